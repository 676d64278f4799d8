package models

import (
	"time"

	"gorm.io/datatypes"
)

// CartItem is one server-persisted cart line, unique per
// (user_phone, product_id, weight). Repeated adds bump quantity
// instead of inserting a second row.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserPhone    string    `gorm:"index:idx_cart_line,unique;not null" json:"user_phone"`
	ProductID    uint      `gorm:"index:idx_cart_line,unique;not null" json:"product_id"`
	Weight       string    `gorm:"index:idx_cart_line,unique;default:1kg" json:"weight"`
	ProductName  string    `json:"product_name"`
	ProductPrice float64   `json:"product_price"`
	ProductImage string    `json:"product_image"`
	Quantity     int       `gorm:"default:1" json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CartHistory is an append-only audit log of cart mutations.
type CartHistory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserPhone   string         `gorm:"index" json:"user_phone"`
	Action      string         `json:"action"` // add, update, remove
	ProductID   uint           `json:"product_id"`
	ProductName string         `json:"product_name"`
	Quantity    int            `json:"quantity"`
	Details     datatypes.JSON `json:"details"`
	CreatedAt   time.Time      `json:"created_at"`
}
