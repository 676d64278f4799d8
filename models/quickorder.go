package models

import "time"

// QuickOrder is an unstructured WhatsApp bulk-order lead, tracked
// separately from formal orders.
type QuickOrder struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CustomerName  string    `gorm:"not null" json:"customer_name"`
	CustomerPhone string    `gorm:"not null" json:"customer_phone"`
	Message       string    `json:"message"`
	Status        string    `gorm:"default:pending" json:"status"` // pending, processed, ignored
	AdminNotes    string    `json:"admin_notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
