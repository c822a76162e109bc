package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const authClientTimeout = 5 * time.Second

// ErrTokenRejected is returned when the auth service answered but did not accept the token
var ErrTokenRejected = errors.New("token rejected by auth service")

// TokenVerifier checks a bearer token against the auth service.
// A nil error means the token is valid.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) error
}

// AuthClient calls the auth service verify endpoint
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
}

type verifyResponse struct {
	Valid bool `json:"valid"`
}

// NewAuthClient creates a client for the auth service rooted at baseURL
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: authClientTimeout},
	}
}

// VerifyToken issues GET <base>/verify with the token as bearer credential.
// Non-2xx answers and {"valid": false} wrap ErrTokenRejected; transport and decode
// failures are returned as they are.
func (c *AuthClient) VerifyToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/verify", nil)
	if err != nil {
		return fmt.Errorf("auth-client: failed to build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth-client: verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w (HTTP %d)", ErrTokenRejected, resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("auth-client: failed to decode verify response: %w", err)
	}
	if !body.Valid {
		return ErrTokenRejected
	}
	return nil
}
