package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// The storefront historically shipped three overlapping login flows.
// They are collapsed here into Provider implementations sharing the
// Session state machine.

var errInvalidPhone = errors.New("a valid 10-digit phone number is required")

func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// LocalCredentialProvider is the offline demo flow: any well-formed
// phone number verifies with any non-empty proof.
type LocalCredentialProvider struct{}

func (LocalCredentialProvider) Name() string { return "local" }

func (LocalCredentialProvider) Begin(_ context.Context, phone string) error {
	if !validPhone(phone) {
		return errInvalidPhone
	}
	return nil
}

func (LocalCredentialProvider) Complete(_ context.Context, phone, proof string) (*Profile, error) {
	if proof == "" {
		return nil, errors.New("verification code is required")
	}
	return &Profile{Phone: phone}, nil
}

// OTPProvider verifies against an SMS one-time-password service.
type OTPProvider struct {
	Endpoint   string
	ClientID   string
	HTTPClient *http.Client
}

func (p *OTPProvider) Name() string { return "otp" }

func (p *OTPProvider) httpClient() *http.Client {
	if p.HTTPClient != nil {
		return p.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (p *OTPProvider) post(ctx context.Context, path string, payload, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("OTP provider returned status %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (p *OTPProvider) Begin(ctx context.Context, phone string) error {
	if !validPhone(phone) {
		return errInvalidPhone
	}
	return p.post(ctx, "/send", map[string]string{
		"phone":     phone,
		"client_id": p.ClientID,
	}, nil)
}

func (p *OTPProvider) Complete(ctx context.Context, phone, code string) (*Profile, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		User    struct {
			Phone string `json:"phone"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	if err := p.post(ctx, "/verify", map[string]string{"phone": phone, "code": code}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, errors.New("verification failed")
	}
	profile := &Profile{Phone: resp.User.Phone, Name: resp.User.Name}
	if profile.Phone == "" {
		profile.Phone = phone
	}
	return profile, nil
}

// FederatedProvider exchanges an auth-as-a-service token for a profile.
// Begin is a no-op: the redirect to the provider happens outside this
// process, and Complete receives the resulting token as proof.
type FederatedProvider struct {
	ExchangeURL string
	HTTPClient  *http.Client
}

func (p *FederatedProvider) Name() string { return "federated" }

func (p *FederatedProvider) Begin(context.Context, string) error { return nil }

func (p *FederatedProvider) Complete(ctx context.Context, _, token string) (*Profile, error) {
	if token == "" {
		return nil, errors.New("provider token is required")
	}

	data, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.ExchangeURL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := p.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("token exchange failed with status %d", resp.StatusCode)
	}

	var body struct {
		Phone string `json:"phone_number"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Phone == "" {
		return nil, errors.New("provider returned no phone number")
	}
	return &Profile{Phone: body.Phone, Name: body.Name, Email: body.Email}, nil
}
