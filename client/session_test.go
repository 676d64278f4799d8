package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avinashrajmsk/Ravi/client"
	"github.com/avinashrajmsk/Ravi/models"
)

// userServer fakes the user endpoints: GET looks up the in-memory set,
// POST upserts into it.
func userServer(t *testing.T, known map[string]models.User) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users" {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			phone := r.URL.Query().Get("phone_number")
			user, ok := known[phone]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "User not found"})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "user": user})
		case http.MethodPost:
			var payload struct {
				PhoneNumber string `json:"phone_number"`
				Name        string `json:"name"`
				Email       string `json:"email"`
			}
			json.NewDecoder(r.Body).Decode(&payload)
			user := models.User{ID: uint(len(known) + 1), PhoneNumber: payload.PhoneNumber, Name: payload.Name, Email: payload.Email}
			known[payload.PhoneNumber] = user
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "message": "User created successfully", "user": user})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}))
}

func TestSessionNewUserFlow(t *testing.T) {
	server := userServer(t, map[string]models.User{})
	defer server.Close()

	storage := client.NewMemoryStorage()
	session := client.NewSession(client.LocalCredentialProvider{}, storage, client.NewAPI(server.URL))
	assert.Equal(t, client.StateLoggedOut, session.State())
	assert.False(t, session.IsLoggedIn())

	ctx := context.Background()

	t.Run("Begin moves to Verifying", func(t *testing.T) {
		assert.NoError(t, session.Begin(ctx, "9876543210"))
		assert.Equal(t, client.StateVerifying, session.State())
	})

	t.Run("Unknown phone needs a name before first login", func(t *testing.T) {
		err := session.Complete(ctx, "1234")
		assert.ErrorIs(t, err, client.ErrNameRequired)
		assert.Equal(t, client.StateVerifying, session.State())
	})

	t.Run("CompleteProfile finishes signup", func(t *testing.T) {
		assert.NoError(t, session.CompleteProfile(ctx, "Ravi Kumar"))
		assert.True(t, session.IsLoggedIn())
		assert.Equal(t, "Ravi Kumar", session.CurrentUser().Name)
		assert.Equal(t, "9876543210", session.CurrentUser().PhoneNumber)
	})

	t.Run("The user is persisted for the next visit", func(t *testing.T) {
		restored := client.NewSession(client.LocalCredentialProvider{}, storage, client.NewAPI(server.URL))
		assert.True(t, restored.IsLoggedIn())
		assert.Equal(t, "9876543210", restored.CurrentUser().PhoneNumber)
	})

	t.Run("Logout clears state and storage", func(t *testing.T) {
		session.Logout()
		assert.Equal(t, client.StateLoggedOut, session.State())
		assert.Nil(t, session.CurrentUser())

		fresh := client.NewSession(client.LocalCredentialProvider{}, storage, client.NewAPI(server.URL))
		assert.False(t, fresh.IsLoggedIn())
	})
}

func TestSessionKnownUserLogsStraightIn(t *testing.T) {
	server := userServer(t, map[string]models.User{
		"9123456780": {ID: 1, PhoneNumber: "9123456780", Name: "Meena"},
	})
	defer server.Close()

	session := client.NewSession(client.LocalCredentialProvider{}, client.NewMemoryStorage(), client.NewAPI(server.URL))

	ctx := context.Background()
	assert.NoError(t, session.Begin(ctx, "9123456780"))
	assert.NoError(t, session.Complete(ctx, "1234"))
	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, "Meena", session.CurrentUser().Name)
}

// namedProvider verifies like the local provider but already knows the
// customer's name, the way a federated exchange would.
type namedProvider struct {
	name string
}

func (namedProvider) Name() string                              { return "stub" }
func (namedProvider) Begin(context.Context, string) error       { return nil }
func (p namedProvider) Complete(_ context.Context, phone, _ string) (*client.Profile, error) {
	return &client.Profile{Phone: phone, Name: p.name}, nil
}

func TestSessionProviderSuppliedName(t *testing.T) {
	server := userServer(t, map[string]models.User{})
	defer server.Close()

	session := client.NewSession(namedProvider{name: "Asha"}, client.NewMemoryStorage(), client.NewAPI(server.URL))

	ctx := context.Background()
	assert.NoError(t, session.Begin(ctx, "9000000001"))

	// The provider-supplied name registers without ErrNameRequired.
	assert.NoError(t, session.Complete(ctx, "token"))
	assert.True(t, session.IsLoggedIn())
	assert.Equal(t, "Asha", session.CurrentUser().Name)
}

func TestSessionGuards(t *testing.T) {
	session := client.NewSession(client.LocalCredentialProvider{}, client.NewMemoryStorage(), client.NewAPI("http://unused"))

	ctx := context.Background()

	t.Run("Complete outside Verifying is rejected", func(t *testing.T) {
		assert.ErrorIs(t, session.Complete(ctx, "1234"), client.ErrNotVerifying)
		assert.ErrorIs(t, session.CompleteProfile(ctx, "Someone"), client.ErrNotVerifying)
	})

	t.Run("Begin rejects a malformed phone", func(t *testing.T) {
		assert.Error(t, session.Begin(ctx, "12345"))
		assert.Error(t, session.Begin(ctx, "98765abcde"))
		assert.Equal(t, client.StateLoggedOut, session.State())
	})

	t.Run("Empty proof is rejected by the local provider", func(t *testing.T) {
		assert.NoError(t, session.Begin(ctx, "9876543210"))
		assert.Error(t, session.Complete(ctx, ""))
		assert.Equal(t, client.StateVerifying, session.State())
	})
}

func TestOTPProvider(t *testing.T) {
	var sendCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/send":
			sendCalls.Add(1)
			w.WriteHeader(http.StatusOK)
		case "/verify":
			var payload struct {
				Phone string `json:"phone"`
				Code  string `json:"code"`
			}
			json.NewDecoder(r.Body).Decode(&payload)
			if payload.Code != "424242" {
				json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Invalid code"})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"user":    map[string]string{"phone": payload.Phone, "name": "Verified Customer"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	provider := &client.OTPProvider{Endpoint: server.URL, ClientID: "storefront"}
	ctx := context.Background()

	assert.NoError(t, provider.Begin(ctx, "9876543210"))
	assert.Equal(t, int32(1), sendCalls.Load())

	_, err := provider.Complete(ctx, "9876543210", "000000")
	assert.EqualError(t, err, "Invalid code")

	profile, err := provider.Complete(ctx, "9876543210", "424242")
	assert.NoError(t, err)
	assert.Equal(t, "9876543210", profile.Phone)
	assert.Equal(t, "Verified Customer", profile.Name)
}

func TestFederatedProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Token string `json:"token"`
		}
		json.NewDecoder(r.Body).Decode(&payload)
		if payload.Token != "good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"phone_number": "9123456780",
			"name":         "Federated User",
			"email":        "fed@example.com",
		})
	}))
	defer server.Close()

	provider := &client.FederatedProvider{ExchangeURL: server.URL}
	ctx := context.Background()

	assert.NoError(t, provider.Begin(ctx, "anything"))

	_, err := provider.Complete(ctx, "", "bad-token")
	assert.Error(t, err)

	_, err = provider.Complete(ctx, "", "")
	assert.Error(t, err)

	profile, err := provider.Complete(ctx, "", "good-token")
	assert.NoError(t, err)
	assert.Equal(t, "9123456780", profile.Phone)
	assert.Equal(t, "Federated User", profile.Name)
	assert.Equal(t, "fed@example.com", profile.Email)
}
