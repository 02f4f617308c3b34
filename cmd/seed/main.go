package main

import (
	"fmt"
	"log"

	"grahini/internal/config"
	"grahini/internal/database"
	"grahini/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.Review{},
		&domain.Admin{},
		&domain.Token{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM tokens")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM admins")

	// ================== ADMIN ==================
	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := domain.Admin{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	db.Create(&admin)
	log.Printf("Admin created: %s / %s", cfg.AdminEmail, cfg.AdminPassword)

	// ================== REVIEWS ==================
	log.Println("Creating sample reviews...")

	fixtures := []domain.Review{
		{FirstName: "Asha", LastName: "Rao", Rating: 5, Text: "Great ghee, tastes just like homemade!", Approved: true},
		{FirstName: "Vikram", LastName: "Shah", Rating: 4, Text: "Rich aroma, arrived well packed.", Email: "vikram@example.com", Approved: true},
		{FirstName: "Meera", LastName: "Iyer", Rating: 5, Text: "Ordered twice already, consistent quality.", Phone: "+91 98765 43210", Approved: true},
		{FirstName: "Ravi", LastName: "Kumar", Rating: 3, Text: "Good but the jar was smaller than expected."},
		{FirstName: "Lakshmi", LastName: "Nair", Rating: 5, Text: "Best ghee we have found online."},
	}
	for i := range fixtures {
		db.Create(&fixtures[i])
	}

	var pending int64
	db.Model(&domain.Review{}).Where("approved = ?", false).Count(&pending)
	fmt.Printf("Seeded %d reviews (%d pending moderation)\n", len(fixtures), pending)
}
