package models

import "time"

// HeroImage is one slide of the storefront hero carousel.
type HeroImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ImageURL   string    `gorm:"not null" json:"image_url"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	ButtonText string    `json:"button_text"`
	ButtonLink string    `json:"button_link"`
	Active     bool      `gorm:"default:true" json:"active"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
}

// SiteSetting is a key/value row for storefront branding and copy.
type SiteSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"uniqueIndex;not null" json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}
