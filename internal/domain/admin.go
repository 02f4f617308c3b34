package domain

import "time"

// Admin is the single moderator account. There is no self-registration:
// the one row is seeded at startup if it does not exist yet.
type Admin struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
