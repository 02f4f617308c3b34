package repository

import (
	"context"

	"grahini/internal/domain"

	"gorm.io/gorm"
)

// TokenRepository provides DB access for admin session tokens.
type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, t *domain.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TokenRepository) GetByHash(ctx context.Context, hash string) (*domain.Token, error) {
	var t domain.Token
	err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}
