package models

import "time"

// User is keyed by phone number and upserted on every login/checkout.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"phone_number"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Pincode     string    `json:"pincode"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
