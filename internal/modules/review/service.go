package review

import (
	"context"

	"grahini/internal/domain"
	pkgvalidator "grahini/internal/pkg/validator"
)

const (
	defaultPublicLimit = 50
	maxListLimit       = 200
)

type Service struct {
	reviews Repository
}

func NewService(reviews Repository) *Service {
	return &Service{reviews: reviews}
}

// Submit validates a public submission and persists it unapproved. Nothing
// is written when validation fails.
func (s *Service) Submit(ctx context.Context, req SubmitReviewRequest) (*domain.Review, error) {
	if fields := pkgvalidator.Validate(req); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}

	rv := &domain.Review{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Rating:    req.Rating,
		Text:      req.Text,
		Email:     req.Email,
		Phone:     req.Phone,
		Approved:  false,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// ListApproved returns approved reviews only, newest first.
func (s *Service) ListApproved(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = defaultPublicLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	approved := true
	return s.reviews.List(ctx, &approved, limit)
}
