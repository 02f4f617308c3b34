package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"size:50;not null"`
	LastName  string    `json:"last_name" gorm:"size:50;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Text      string    `json:"text" gorm:"size:2000;not null"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20"`
	Approved  bool      `json:"approved" gorm:"index;not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
