package domain

import "time"

// Token is an admin session credential.
//
// Security notes:
// - We never store the raw token in DB, only its SHA-256 hash (TokenHash).
// - Tokens do not expire and there is no logout; a session lives until the
//   row is removed by hand.
type Token struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	AdminEmail string `json:"admin_email" gorm:"index;not null"`

	TokenHash string `json:"-" gorm:"size:64;uniqueIndex;not null"`

	CreatedAt time.Time `json:"created_at"`
}
