package client

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/avinashrajmsk/Ravi/models"
)

const userStorageKey = "satyam_gold_user"

// State is the login lifecycle:
// LoggedOut -> (Begin) -> Verifying -> (Complete) -> LoggedIn,
// and LoggedIn -> LoggedOut on Logout.
type State int

const (
	StateLoggedOut State = iota
	StateVerifying
	StateLoggedIn
)

func (s State) String() string {
	switch s {
	case StateVerifying:
		return "verifying"
	case StateLoggedIn:
		return "logged-in"
	default:
		return "logged-out"
	}
}

// ErrNameRequired is returned by Complete when the phone number has
// never been seen before: the caller must collect a name and call
// CompleteProfile before the first login finishes.
var ErrNameRequired = errors.New("name is required to complete signup")

// ErrNotVerifying is returned when Complete or CompleteProfile is
// called outside the Verifying state.
var ErrNotVerifying = errors.New("no login in progress")

// Profile is what a provider hands back after verification.
type Profile struct {
	Phone string
	Name  string
	Email string
}

// Provider abstracts the three historical login paths (local credential
// check, OTP widget, federated auth) behind one interface.
type Provider interface {
	Name() string
	// Begin starts verification for the phone number (send a code,
	// open a redirect, or no-op for offline checks).
	Begin(ctx context.Context, phone string) error
	// Complete finishes verification with whatever proof the flow
	// produced (an OTP code, a provider token).
	Complete(ctx context.Context, phone, proof string) (*Profile, error)
}

// Session is the single source of truth for "is logged in". The user
// object is persisted to Storage and upserted to the server on login.
type Session struct {
	provider Provider
	storage  Storage
	api      *API

	state        State
	user         *models.User
	pendingPhone string
	pendingEmail string
}

// NewSession restores a persisted user, if any, straight into LoggedIn.
func NewSession(provider Provider, storage Storage, api *API) *Session {
	s := &Session{provider: provider, storage: storage, api: api, state: StateLoggedOut}
	if data, ok := storage.Get(userStorageKey); ok {
		var user models.User
		if err := json.Unmarshal(data, &user); err == nil && user.PhoneNumber != "" {
			s.user = &user
			s.state = StateLoggedIn
		}
	}
	return s
}

func (s *Session) State() State  { return s.state }
func (s *Session) IsLoggedIn() bool { return s.state == StateLoggedIn }

// CurrentUser returns the logged-in user, or nil.
func (s *Session) CurrentUser() *models.User {
	return s.user
}

// Begin starts a login attempt for the phone number.
func (s *Session) Begin(ctx context.Context, phone string) error {
	if err := s.provider.Begin(ctx, phone); err != nil {
		return err
	}
	s.state = StateVerifying
	s.pendingPhone = phone
	return nil
}

// Complete finishes verification. A phone number the server already
// knows logs straight in; an unknown one needs CompleteProfile first.
func (s *Session) Complete(ctx context.Context, proof string) error {
	if s.state != StateVerifying {
		return ErrNotVerifying
	}

	profile, err := s.provider.Complete(ctx, s.pendingPhone, proof)
	if err != nil {
		return err
	}
	if profile.Phone != "" {
		s.pendingPhone = profile.Phone
	}
	s.pendingEmail = profile.Email

	// Known phone number: direct login with the stored profile.
	user, err := s.api.GetUser(ctx, s.pendingPhone)
	if err == nil {
		s.login(user)
		return nil
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != 404 {
		return err
	}

	// First visit: the provider may already know the name.
	if profile.Name != "" {
		return s.register(ctx, profile.Name)
	}
	return ErrNameRequired
}

// CompleteProfile supplies the name collected from the user after
// Complete returned ErrNameRequired.
func (s *Session) CompleteProfile(ctx context.Context, name string) error {
	if s.state != StateVerifying {
		return ErrNotVerifying
	}
	return s.register(ctx, name)
}

func (s *Session) register(ctx context.Context, name string) error {
	user, err := s.api.SaveUser(ctx, UserPayload{
		PhoneNumber: s.pendingPhone,
		Name:        name,
		Email:       s.pendingEmail,
	})
	if err != nil {
		return err
	}
	s.login(user)
	return nil
}

func (s *Session) login(user *models.User) {
	s.user = user
	s.state = StateLoggedIn
	s.pendingPhone = ""
	s.pendingEmail = ""

	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("❌ Failed to persist user: %v", err)
		return
	}
	if err := s.storage.Set(userStorageKey, data); err != nil {
		log.Printf("❌ Failed to persist user: %v", err)
	}
}

// Logout clears the session and its persisted user.
func (s *Session) Logout() {
	s.user = nil
	s.state = StateLoggedOut
	s.pendingPhone = ""
	s.pendingEmail = ""
	if err := s.storage.Delete(userStorageKey); err != nil {
		log.Printf("❌ Failed to clear persisted user: %v", err)
	}
}
