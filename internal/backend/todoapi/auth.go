package todoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"geotask/internal/service"
)

// loginResponse is the wire shape shared by /login and /register.
type loginResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Token string `json:"token"`
	} `json:"data"`
}

// Login authenticates with email/password and returns the bearer token.
// The token is opaque here; decoding its claims is the caller's concern.
// An HTTP 401 maps to service.ErrInvalidCredentials.
func (c *AuthClient) Login(ctx context.Context, creds service.Credentials) (string, error) {
	return c.postCredentials(ctx, "login", creds)
}

// Register creates an account and returns the bearer token. Response and
// error shape are identical to Login.
func (c *AuthClient) Register(ctx context.Context, creds service.Credentials) (string, error) {
	return c.postCredentials(ctx, "register", creds)
}

func (c *AuthClient) postCredentials(ctx context.Context, op string, creds service.Credentials) (string, error) {
	body, err := json.Marshal(creds)
	if err != nil {
		return "", &service.RequestError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+op, bytes.NewReader(body))
	if err != nil {
		return "", &service.RequestError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &service.RequestError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", service.ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &service.RequestError{Op: op, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &service.DecodeError{Resource: op, Err: err}
	}
	if decoded.Data.Token == "" {
		return "", &service.DecodeError{Resource: op, Err: errors.New("missing token")}
	}

	return decoded.Data.Token, nil
}
