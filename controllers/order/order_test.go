package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	orderControllers "github.com/avinashrajmsk/Ravi/controllers/order"
	"github.com/avinashrajmsk/Ravi/models"
)

func setupOrderTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := testDB.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/orders", orderControllers.CreateOrder(testDB))
		api.GET("/orders", orderControllers.GetOrders(testDB))
		api.GET("/orders/user/:userId", orderControllers.GetUserOrders(testDB))
		api.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(testDB))
		api.DELETE("/orders/:id", orderControllers.DeleteOrder(testDB))
	}

	return r, testDB
}

func orderRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func checkoutBody() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Ravi Kumar",
		"customer_email":   "ravi@example.com",
		"customer_phone":   "9876543210",
		"customer_address": "12 MG Road, Nagpur, MH 440001",
		"items": []map[string]interface{}{
			{"id": 1, "name": "Kolam Rice", "price": 85.0, "weight": "5kg", "quantity": 2},
			{"id": 4, "name": "Toor Dal", "price": 140.0, "weight": "1kg", "quantity": 1},
		},
		"total_amount": 990.0,
	}
}

var orderNumberPattern = regexp.MustCompile(`^SG-\d{12}\d{2}$`)

func TestCreateOrder(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)

	t.Run("Derives an order number and defaults status to Pending", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, orderRequest(http.MethodPost, "/api/orders", checkoutBody()))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			Success bool         `json:"success"`
			Order   models.Order `json:"order"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Regexp(t, orderNumberPattern, resp.Order.OrderNumber)
		assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
		assert.Greater(t, resp.Order.ID, uint(0))
		assert.Len(t, resp.Order.Items, 2)

		// Items survive the text column round trip.
		var stored models.Order
		assert.NoError(t, testDB.First(&stored, resp.Order.ID).Error)
		assert.Len(t, stored.Items, 2)
		assert.Equal(t, "Kolam Rice", stored.Items[0].Name)
		assert.Equal(t, "5kg", stored.Items[0].Weight)
		assert.Equal(t, 2, stored.Items[0].Quantity)
	})

	t.Run("Keeps a caller-supplied order number", func(t *testing.T) {
		body := checkoutBody()
		body["order_number"] = "SG-99010112000001"
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, orderRequest(http.MethodPost, "/api/orders", body))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			Order models.Order `json:"order"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "SG-99010112000001", resp.Order.OrderNumber)
	})

	t.Run("Rejects a submission missing customer fields", func(t *testing.T) {
		body := checkoutBody()
		delete(body, "customer_address")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, orderRequest(http.MethodPost, "/api/orders", body))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Falls back to the customer phone as user id", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, orderRequest(http.MethodPost, "/api/orders", checkoutBody()))
		assert.Equal(t, http.StatusOK, recorder.Code)

		userRecorder := httptest.NewRecorder()
		router.ServeHTTP(userRecorder, orderRequest(http.MethodGet, "/api/orders/user/9876543210", nil))
		assert.Equal(t, http.StatusOK, userRecorder.Code)

		var resp struct {
			Orders []models.Order `json:"orders"`
			Count  int            `json:"count"`
		}
		assert.NoError(t, json.Unmarshal(userRecorder.Body.Bytes(), &resp))
		assert.Equal(t, len(resp.Orders), resp.Count)
		assert.GreaterOrEqual(t, resp.Count, 1)
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)

	order := models.Order{
		OrderNumber:     "SG-25010109300042",
		CustomerName:    "Meena",
		CustomerPhone:   "9123456780",
		CustomerAddress: "Plot 4, Akola",
		Status:          models.OrderStatusPending,
	}
	testDB.Create(&order)

	t.Run("Accepts each lifecycle status", func(t *testing.T) {
		for _, status := range models.OrderStatuses() {
			recorder := httptest.NewRecorder()
			path := fmt.Sprintf("/api/orders/%d/status", order.ID)
			router.ServeHTTP(recorder, orderRequest(http.MethodPut, path, map[string]string{"status": status}))
			assert.Equal(t, http.StatusOK, recorder.Code, status)
		}

		var stored models.Order
		testDB.First(&stored, order.ID)
		assert.Equal(t, models.OrderStatusDelivered, stored.Status)
	})

	t.Run("Rejects unknown statuses and leaves the row untouched", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		path := fmt.Sprintf("/api/orders/%d/status", order.ID)
		router.ServeHTTP(recorder, orderRequest(http.MethodPut, path, map[string]string{"status": "Cancelled"}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var stored models.Order
		testDB.First(&stored, order.ID)
		assert.Equal(t, models.OrderStatusDelivered, stored.Status)
	})

	t.Run("Case matters", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		path := fmt.Sprintf("/api/orders/%d/status", order.ID)
		router.ServeHTTP(recorder, orderRequest(http.MethodPut, path, map[string]string{"status": "pending"}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Unknown order id is a 404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, orderRequest(http.MethodPut, "/api/orders/9999/status", map[string]string{"status": "Confirmed"}))
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestGetOrdersPagination(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)

	for i := 0; i < 5; i++ {
		testDB.Create(&models.Order{
			OrderNumber:     fmt.Sprintf("SG-2501010930%04d", i),
			CustomerName:    "Bulk",
			CustomerPhone:   "9000000000",
			CustomerAddress: "Warehouse",
			Items:           models.LineItems{{ProductID: 1, Name: "Rice", Price: 80, Weight: "1kg", Quantity: 1}},
		})
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, orderRequest(http.MethodGet, "/api/orders?limit=2&offset=2", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Orders, 2)
	assert.Len(t, resp.Orders[0].Items, 1)
}

func TestDeleteOrder(t *testing.T) {
	router, testDB := setupOrderTestRouter(t)

	order := models.Order{
		OrderNumber:     "SG-25010109300099",
		CustomerName:    "Temp",
		CustomerPhone:   "9111111111",
		CustomerAddress: "Somewhere",
	}
	testDB.Create(&order)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, orderRequest(http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, orderRequest(http.MethodDelete, fmt.Sprintf("/api/orders/%d", order.ID), nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
