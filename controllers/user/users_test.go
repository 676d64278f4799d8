package userControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	userControllers "github.com/avinashrajmsk/Ravi/controllers/user"
	"github.com/avinashrajmsk/Ravi/models"
)

func setupUserTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := testDB.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.POST("/users", userControllers.SaveUser(testDB))
		api.GET("/users", userControllers.GetUser(testDB))
		api.GET("/admin/users", userControllers.GetAllUsers(testDB))
	}

	return r, testDB
}

func userRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSaveUser(t *testing.T) {
	router, testDB := setupUserTestRouter(t)

	t.Run("Creates a new profile", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodPost, "/api/users", map[string]string{
			"phone_number": "9876543210",
			"name":         "Ravi Kumar",
			"city":         "Nagpur",
		}))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "User created successfully", resp["message"])
	})

	t.Run("Same phone updates in place", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodPost, "/api/users", map[string]string{
			"phone_number": "9876543210",
			"name":         "Ravi K",
			"address":      "12 MG Road",
		}))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "User updated successfully", resp["message"])

		var count int64
		testDB.Model(&models.User{}).Count(&count)
		assert.Equal(t, int64(1), count)

		var stored models.User
		testDB.Where("phone_number = ?", "9876543210").First(&stored)
		assert.Equal(t, "Ravi K", stored.Name)
		assert.Equal(t, "12 MG Road", stored.Address)
	})

	t.Run("Phone and name are mandatory", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodPost, "/api/users", map[string]string{
			"phone_number": "9000000000",
		}))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestGetUser(t *testing.T) {
	router, testDB := setupUserTestRouter(t)

	testDB.Create(&models.User{PhoneNumber: "9123456780", Name: "Meena"})

	t.Run("Finds by phone number", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodGet, "/api/users?phone_number=9123456780", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			User models.User `json:"user"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Meena", resp.User.Name)
	})

	t.Run("Unknown phone is a 404", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodGet, "/api/users?phone_number=0000000000", nil))
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp["message"])
	})

	t.Run("Missing phone is rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodGet, "/api/users", nil))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Back office lists everyone", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, userRequest(http.MethodGet, "/api/admin/users", nil))
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			Users []models.User `json:"users"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Len(t, resp.Users, 1)
	})
}
