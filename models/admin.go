package models

import "time"

// AdminAuth holds one row per admin username. The session token is an
// opaque string whose validity is purely a 24-hour recency check on
// UpdatedAt. PasswordHash is compared as-is.
type AdminAuth struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `json:"-"`
	SessionToken string    `gorm:"index" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
