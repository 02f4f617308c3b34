package review

import (
	"strconv"
	"time"

	"grahini/internal/domain"
)

// SubmitReviewRequest deliberately has no approved field: whatever the
// client sends for it is dropped at bind time and new reviews always start
// unapproved.
type SubmitReviewRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text      string `json:"text" validate:"required,min=5,max=2000"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20,phone"`
}

// ReviewResponse exposes the store identifier as a plain string.
type ReviewResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

func ToResponse(rv domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        strconv.FormatInt(rv.ID, 10),
		FirstName: rv.FirstName,
		LastName:  rv.LastName,
		Rating:    rv.Rating,
		Text:      rv.Text,
		Email:     rv.Email,
		Phone:     rv.Phone,
		Approved:  rv.Approved,
		CreatedAt: rv.CreatedAt,
	}
}

func ToResponseList(items []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(items))
	for _, rv := range items {
		out = append(out, ToResponse(rv))
	}
	return out
}
