package models

import "time"

type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	Price         float64 `gorm:"not null" json:"price"`
	OriginalPrice float64 `json:"original_price"`
	Unit          string  `gorm:"default:kg" json:"unit"`
	Category      string  `gorm:"default:General" json:"category"`
	InStock       bool    `gorm:"default:true" json:"in_stock"`
	// Comma-separated package sizes the storefront renders as weight variants,
	// e.g. "1kg,5kg,10kg".
	WeightOptions string    `gorm:"default:1kg" json:"weight_options"`
	ImageURL      string    `json:"image_url"`
	LovedBy       int       `gorm:"default:0" json:"loved_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
