// Package todoapi implements the service.Service interface over the task REST API.
package todoapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"geotask/internal/config"
	"geotask/internal/logger"
	"geotask/internal/service"
)

// Client implements service.Service against the authenticated task API.
// It is bound to one bearer token for its whole lifetime; constructing a
// client performs no I/O.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a task client bound to {API_URL}/ with the given bearer token
// attached to every request it issues.
func New(cfg *config.Config, token string) *Client {
	return &Client{
		httpClient: newHTTPClient(token),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// AuthClient issues the unauthenticated login/register calls.
type AuthClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewAuth creates an auth client bound to {API_URL}/auth with no credential.
func NewAuth(cfg *config.Config) *AuthClient {
	return &AuthClient{
		httpClient: newHTTPClient(""),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/auth",
	}
}

// newHTTPClient builds the per-client HTTP client. A non-empty token is
// injected as an Authorization: Bearer header via an oauth2 static token
// source; every request additionally carries an X-Request-ID.
func newHTTPClient(token string) *http.Client {
	var rt http.RoundTripper = &requestIDTransport{next: http.DefaultTransport}
	if token != "" {
		rt = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   rt,
		}
	}
	return &http.Client{Transport: rt}
}

// requestIDTransport tags each request with a fresh X-Request-ID and logs the
// round-trip at debug level.
type requestIDTransport struct {
	next http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	req = req.Clone(req.Context())
	req.Header.Set("X-Request-ID", id)

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		logger.Debug("request failed",
			"method", req.Method, "url", req.URL.String(), "request_id", id, "err", err)
		return nil, err
	}
	logger.Debug("request",
		"method", req.Method, "url", req.URL.String(), "request_id", id,
		"status", resp.StatusCode, "elapsed", time.Since(start))
	return resp, nil
}

// compile-time interface check
var _ service.Service = (*Client)(nil)
