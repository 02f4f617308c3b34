package auth

import (
	"context"

	"grahini/internal/domain"
)

// AdminRepositoryInterface — only the methods auth service uses
type AdminRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// TokenRepositoryInterface — storage for admin session tokens
type TokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Token) error
	GetByHash(ctx context.Context, hash string) (*domain.Token, error)
}
