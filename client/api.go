// Package client ports the storefront's browser-side controllers: the
// API wrapper, the cart, and the login session. State lives in explicit
// structs with persistence injected through the Storage interface
// instead of ambient local storage.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avinashrajmsk/Ravi/models"
)

// APIError carries the HTTP status and the server's message so callers
// can tell a 404 from a real failure.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API request failed with status %d", e.Status)
}

// API is a thin wrapper over the JSON endpoints, one method per call
// the storefront makes.
type API struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewAPI(baseURL string) *API {
	return &API{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// request performs one round trip and decodes the response envelope.
// A non-2xx status or success:false becomes an *APIError.
func (a *API) request(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &APIError{Status: resp.StatusCode, Message: "invalid response from server"}
	}
	if resp.StatusCode >= 400 || !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// ---- Products & content ----

func (a *API) GetProducts(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var resp struct {
		envelope
		Products []models.Product `json:"products"`
	}
	path := fmt.Sprintf("/api/products?limit=%d&offset=%d", limit, offset)
	if err := a.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (a *API) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var resp struct {
		envelope
		Product models.Product `json:"product"`
	}
	path := fmt.Sprintf("/api/products/%d", id)
	if err := a.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Product, nil
}

func (a *API) GetHeroImages(ctx context.Context) ([]models.HeroImage, error) {
	var resp struct {
		envelope
		Images []models.HeroImage `json:"images"`
	}
	if err := a.request(ctx, http.MethodGet, "/api/hero-images", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Images, nil
}

func (a *API) GetSettings(ctx context.Context) (map[string]string, error) {
	var resp struct {
		envelope
		Settings map[string]string `json:"settings"`
	}
	if err := a.request(ctx, http.MethodGet, "/api/settings", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Settings, nil
}

// ---- Orders ----

type OrderPayload struct {
	OrderNumber     string           `json:"order_number,omitempty"`
	UserID          string           `json:"user_id,omitempty"`
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone"`
	CustomerAddress string           `json:"customer_address"`
	OrderNotes      string           `json:"order_notes,omitempty"`
	Items           models.LineItems `json:"items"`
	TotalAmount     float64          `json:"total_amount"`
	Status          string           `json:"status,omitempty"`
}

func (a *API) CreateOrder(ctx context.Context, order OrderPayload) (*models.Order, error) {
	var resp struct {
		envelope
		Order models.Order `json:"order"`
	}
	if err := a.request(ctx, http.MethodPost, "/api/orders", order, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

func (a *API) GetUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	var resp struct {
		envelope
		Orders []models.Order `json:"orders"`
	}
	path := "/api/orders/user/" + url.PathEscape(userID)
	if err := a.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// ---- Server cart ----

type CartItemPayload struct {
	UserPhone    string  `json:"user_phone"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Weight       string  `json:"weight"`
}

func (a *API) GetCart(ctx context.Context, phone string) ([]models.CartItem, error) {
	var resp struct {
		envelope
		CartItems []models.CartItem `json:"cart_items"`
	}
	path := "/api/cart?phone=" + url.QueryEscape(phone)
	if err := a.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.CartItems, nil
}

func (a *API) AddCartItem(ctx context.Context, item CartItemPayload) error {
	return a.request(ctx, http.MethodPost, "/api/cart", item, nil)
}

func (a *API) RemoveCartItem(ctx context.Context, itemID uint, phone string) error {
	path := fmt.Sprintf("/api/cart?id=%d&phone=%s", itemID, url.QueryEscape(phone))
	return a.request(ctx, http.MethodDelete, path, nil, nil)
}

// ---- Users ----

type UserPayload struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

func (a *API) SaveUser(ctx context.Context, user UserPayload) (*models.User, error) {
	var resp struct {
		envelope
		User models.User `json:"user"`
	}
	if err := a.request(ctx, http.MethodPost, "/api/users", user, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (a *API) GetUser(ctx context.Context, phone string) (*models.User, error) {
	var resp struct {
		envelope
		User models.User `json:"user"`
	}
	path := "/api/users?phone_number=" + url.QueryEscape(phone)
	if err := a.request(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ---- Leads ----

type QuickOrderPayload struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Message       string `json:"message"`
}

func (a *API) CreateQuickOrder(ctx context.Context, order QuickOrderPayload) error {
	return a.request(ctx, http.MethodPost, "/api/quick-orders", order, nil)
}
