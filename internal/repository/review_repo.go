package repository

import (
	"context"

	"grahini/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

// List returns reviews newest first. approved=nil means no approval filter.
func (r *ReviewRepository) List(ctx context.Context, approved *bool, limit int) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Model(&domain.Review{})
	if approved != nil {
		q = q.Where("approved = ?", *approved)
	}

	var items []domain.Review
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SetApproved persists the approval flag and reports how many rows matched,
// so callers can distinguish a missing review from a no-op update.
func (r *ReviewRepository) SetApproved(ctx context.Context, id int64, approved bool) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("id = ?", id).
		Update("approved", approved)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
