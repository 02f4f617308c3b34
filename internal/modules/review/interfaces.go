package review

import (
	"context"

	"grahini/internal/domain"
)

// Repository — only the methods the public review surface needs
type Repository interface {
	Create(ctx context.Context, rv *domain.Review) error
	List(ctx context.Context, approved *bool, limit int) ([]domain.Review, error)
}
