package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"grahini/internal/database"
	"grahini/internal/domain"
	"grahini/internal/modules/auth"
	"grahini/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTokenAuth(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// In-memory sqlite lives per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&domain.Admin{}, &domain.Token{}))

	svc := auth.NewService(repository.NewAdminRepository(db), repository.NewTokenRepository(db))
	require.NoError(t, svc.EnsureDefaultAdmin(context.Background(), "admin@grahini.in", "grahini123"))

	token, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@grahini.in",
		Password: "grahini123",
	})
	require.NoError(t, err)

	router := gin.New()
	router.Use(TokenAuth(svc))

	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_email": c.GetString("admin_email")})
	})

	return router, token
}

func TestTokenAuth_QueryParam(t *testing.T) {
	router, token := setupTokenAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@grahini.in")
}

func TestTokenAuth_BearerHeader(t *testing.T) {
	router, token := setupTokenAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenAuth_MissingToken(t *testing.T) {
	router, _ := setupTokenAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenAuth_UnknownToken(t *testing.T) {
	router, _ := setupTokenAuth(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected?token=deadbeefdeadbeef", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}
