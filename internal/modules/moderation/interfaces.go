package moderation

import (
	"context"

	"grahini/internal/domain"
)

// Repository — only the methods the moderation surface needs
type Repository interface {
	List(ctx context.Context, approved *bool, limit int) ([]domain.Review, error)
	SetApproved(ctx context.Context, id int64, approved bool) (int64, error)
}
