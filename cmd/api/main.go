package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"grahini/internal/config"
	"grahini/internal/database"
	"grahini/internal/domain"
	"grahini/internal/middleware"
	"grahini/internal/modules/auth"
	"grahini/internal/modules/health"
	"grahini/internal/modules/moderation"
	"grahini/internal/modules/review"
	"grahini/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	models := []any{
		&domain.Review{},
		&domain.Admin{},
		&domain.Token{},
	}
	models = append(models, health.Models()...)
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal(err)
	}

	reviewRepo := repository.NewReviewRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	authService := auth.NewService(adminRepo, tokenRepo)
	authHandler := auth.NewHandler(authService)

	reviewService := review.NewService(reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	moderationService := moderation.NewService(reviewRepo)
	moderationHandler := moderation.NewHandler(moderationService)

	healthHandler := health.NewHandler(db)

	// The moderator account must exist before the first request is served.
	if err := authService.EnsureDefaultAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal("admin seeding failed: ", err)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	root := r.Group("/")
	{
		// public
		healthHandler.RegisterRoutes(root)
		reviewHandler.RegisterRoutes(root)
		authHandler.RegisterRoutes(root)

		// admin (token required)
		admin := root.Group("/admin")
		admin.Use(middleware.TokenAuth(authService))
		{
			moderationHandler.RegisterRoutes(admin)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
