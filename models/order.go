package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out For Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// OrderLineItem mirrors the cart line shape the storefront submits at
// checkout. The JSON field names are a wire contract shared with the
// admin panel; do not rename them.
type OrderLineItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Weight    string  `json:"weight"`
	Unit      string  `json:"unit,omitempty"`
	Quantity  int     `json:"quantity"`
}

// LineItems is stored as a JSON text column but exposed to callers as a
// typed slice, so the serialized form is validated at the store boundary.
type LineItems []OrderLineItem

func (l LineItems) Value() (driver.Value, error) {
	if l == nil {
		l = LineItems{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *LineItems) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = LineItems{}
		return nil
	case []byte:
		if len(v) == 0 {
			*l = LineItems{}
			return nil
		}
		return json.Unmarshal(v, l)
	case string:
		if v == "" {
			*l = LineItems{}
			return nil
		}
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source type for line items")
	}
}

func (LineItems) GormDataType() string { return "text" }

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNumber     string      `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          string      `gorm:"index" json:"user_id"` // customer phone, used for per-user listing
	CustomerName    string      `gorm:"not null" json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `gorm:"not null" json:"customer_phone"`
	CustomerAddress string      `gorm:"not null" json:"customer_address"`
	OrderNotes      string      `json:"order_notes,omitempty"`
	Items           LineItems   `gorm:"type:text" json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// ValidOrderStatus reports whether s is one of the six permitted values.
// Matching is exact, including case.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusOutForDelivery, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderStatuses lists the permitted values in lifecycle order.
func OrderStatuses() []string {
	return []string{
		string(OrderStatusPending),
		string(OrderStatusConfirmed),
		string(OrderStatusProcessing),
		string(OrderStatusShipped),
		string(OrderStatusOutForDelivery),
		string(OrderStatusDelivered),
	}
}
