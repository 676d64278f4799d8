package client

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/avinashrajmsk/Ravi/models"
)

const cartStorageKey = "satyam_gold_cart"

// CartLine is one cart entry, identified by (product id, weight).
type CartLine struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Weight    string  `json:"weight"`
	Unit      string  `json:"unit,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is the storefront cart controller. Every mutation is persisted
// to Storage immediately; server-side persistence is best effort and
// never blocks or rolls back the local state. Not safe for concurrent
// use: like its browser counterpart it belongs to a single UI flow.
type Cart struct {
	items   []CartLine
	storage Storage
	api     *API
	session *Session
}

// NewCart restores the saved cart, if any. session may be nil for
// guests; server sync only happens while logged in.
func NewCart(storage Storage, api *API, session *Session) *Cart {
	c := &Cart{storage: storage, api: api, session: session}
	if data, ok := storage.Get(cartStorageKey); ok {
		if err := json.Unmarshal(data, &c.items); err != nil {
			log.Printf("❌ Error loading cart from storage: %v", err)
			c.items = nil
		}
	}
	return c
}

func (c *Cart) saveToStorage() {
	data, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("❌ Error saving cart to storage: %v", err)
		return
	}
	if err := c.storage.Set(cartStorageKey, data); err != nil {
		log.Printf("❌ Error saving cart to storage: %v", err)
	}
}

func (c *Cart) findLine(productID uint, weight string) int {
	for i, item := range c.items {
		if item.ProductID == productID && item.Weight == weight {
			return i
		}
	}
	return -1
}

func (c *Cart) userPhone() string {
	if c.session == nil || !c.session.IsLoggedIn() {
		return ""
	}
	return c.session.CurrentUser().PhoneNumber
}

func syncContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// AddItem adds one unit of the product in the given weight variant.
// A line with the same (id, weight) gets its quantity bumped instead
// of duplicating.
func (c *Cart) AddItem(product models.Product, weight string) {
	if weight == "" {
		weight = "1kg"
	}

	if i := c.findLine(product.ID, weight); i > -1 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.ImageURL,
			Weight:    weight,
			Unit:      product.Unit,
			Quantity:  1,
		})
	}

	c.saveToStorage()

	if phone := c.userPhone(); phone != "" {
		ctx, cancel := syncContext()
		defer cancel()
		err := c.api.AddCartItem(ctx, CartItemPayload{
			UserPhone:    phone,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductPrice: product.Price,
			ProductImage: product.ImageURL,
			Quantity:     1,
			Weight:       weight,
		})
		if err != nil {
			log.Printf("❌ Failed to sync cart item to server: %v", err)
		}
	}
}

// RemoveItem drops the line for (productID, weight), locally always and
// server-side best effort.
func (c *Cart) RemoveItem(productID uint, weight string) {
	filtered := c.items[:0]
	for _, item := range c.items {
		if !(item.ProductID == productID && item.Weight == weight) {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
	c.saveToStorage()

	if phone := c.userPhone(); phone != "" {
		ctx, cancel := syncContext()
		defer cancel()
		rows, err := c.api.GetCart(ctx, phone)
		if err != nil {
			log.Printf("❌ Failed to sync cart removal to server: %v", err)
			return
		}
		for _, row := range rows {
			if row.ProductID == productID && row.Weight == weight {
				if err := c.api.RemoveCartItem(ctx, row.ID, phone); err != nil {
					log.Printf("❌ Failed to sync cart removal to server: %v", err)
				}
				break
			}
		}
	}
}

// UpdateQuantity sets the line's quantity; zero or less removes it.
func (c *Cart) UpdateQuantity(productID uint, weight string, quantity int) {
	i := c.findLine(productID, weight)
	if i == -1 {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(productID, weight)
		return
	}
	c.items[i].Quantity = quantity
	c.saveToStorage()
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []CartLine {
	out := make([]CartLine, len(c.items))
	copy(out, c.items)
	return out
}

// Total is the sum of price*quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Clear empties the cart locally.
func (c *Cart) Clear() {
	c.items = nil
	c.saveToStorage()
}

// LoadFromDatabase pulls the server-side cart for the logged-in user
// and merges in any row whose (product id, weight) is not already held
// locally. Local entries always win; server rows never overwrite them.
func (c *Cart) LoadFromDatabase(ctx context.Context) error {
	phone := c.userPhone()
	if phone == "" {
		return nil
	}

	rows, err := c.api.GetCart(ctx, phone)
	if err != nil {
		return err
	}

	merged := false
	for _, row := range rows {
		if c.findLine(row.ProductID, row.Weight) > -1 {
			continue
		}
		c.items = append(c.items, CartLine{
			ProductID: row.ProductID,
			Name:      row.ProductName,
			Price:     row.ProductPrice,
			Image:     row.ProductImage,
			Weight:    row.Weight,
			Quantity:  row.Quantity,
		})
		merged = true
	}
	if merged {
		c.saveToStorage()
	}
	return nil
}

// CustomerDetails is what checkout collects before placing the order.
type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// Checkout submits the cart as an order and clears it on success. The
// server derives the order number and defaults the status to Pending.
func (c *Cart) Checkout(ctx context.Context, details CustomerDetails) (*models.Order, error) {
	items := make(models.LineItems, 0, len(c.items))
	for _, line := range c.items {
		items = append(items, models.OrderLineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Weight:    line.Weight,
			Unit:      line.Unit,
			Quantity:  line.Quantity,
		})
	}

	order, err := c.api.CreateOrder(ctx, OrderPayload{
		UserID:          details.Phone,
		CustomerName:    details.Name,
		CustomerEmail:   details.Email,
		CustomerPhone:   details.Phone,
		CustomerAddress: details.Address,
		OrderNotes:      details.Notes,
		Items:           items,
		TotalAmount:     c.Total(),
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return order, nil
}
