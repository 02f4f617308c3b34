package moderation

import (
	"context"

	"grahini/internal/domain"
)

const adminListLimit = 200

type Service struct {
	reviews Repository
}

func NewService(reviews Repository) *Service {
	return &Service{reviews: reviews}
}

// List returns pending reviews by default; includeAll lifts the filter.
func (s *Service) List(ctx context.Context, includeAll bool) ([]domain.Review, error) {
	var approved *bool
	if !includeAll {
		pending := false
		approved = &pending
	}
	return s.reviews.List(ctx, approved, adminListLimit)
}

// SetApproval moves a review between pending and approved. Both directions
// are allowed; the only failure modes are storage errors and a missing
// review.
func (s *Service) SetApproval(ctx context.Context, id int64, approved bool) error {
	matched, err := s.reviews.SetApproved(ctx, id, approved)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}
