package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"grahini/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for admin authentication
type Service struct {
	admins AdminRepositoryInterface
	tokens TokenRepositoryInterface
}

func NewService(admins AdminRepositoryInterface, tokens TokenRepositoryInterface) *Service {
	return &Service{admins: admins, tokens: tokens}
}

// Login verifies the admin credentials and mints a new session token.
// Unknown email and wrong password fail identically so the response does
// not leak which part was wrong.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	admin, err := s.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	raw, hash, err := generateOpaqueToken()
	if err != nil {
		return "", err
	}

	if err := s.tokens.Create(ctx, &domain.Token{
		AdminEmail: admin.Email,
		TokenHash:  hash,
	}); err != nil {
		return "", err
	}

	return raw, nil
}

// Authorize resolves a presented token to the admin email it was minted
// for. Any token that was not returned by a successful Login fails with
// ErrUnauthorized.
func (s *Service) Authorize(ctx context.Context, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrUnauthorized
	}

	t, err := s.tokens.GetByHash(ctx, hashToken(raw))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}
	return t.AdminEmail, nil
}

// EnsureDefaultAdmin seeds the moderator account on startup. It is
// idempotent: an existing row with the same email is left untouched.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.admins.Create(ctx, &domain.Admin{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}

	log.Println("Default admin created:", email)
	return nil
}

func generateOpaqueToken() (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, hashToken(raw), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
