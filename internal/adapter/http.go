package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-login-flow/internal/config"
	"github.com/MKhiriev/go-login-flow/internal/logger"
	"github.com/MKhiriev/go-login-flow/internal/utils"
	"github.com/MKhiriev/go-login-flow/models"
	"github.com/go-resty/resty/v2"
)

type httpAuthAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPAuthAdapter constructs an HTTP/REST implementation of [AuthAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPAuthAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AuthAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAuthAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AuthAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of subsequent authenticated requests.
func (h *httpAuthAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter].
func (h *httpAuthAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// LoginUser implements [flow.LoginAPI]. It POSTs the credentials to
// POST /api/auth/login and returns an explicit success/failure sum: the
// authenticated user record, or a non-nil [models.APIError] classifying the
// failure. Transport-level errors are mapped to [models.CodeServerUnavailable]
// so no raw error shape ever crosses into the state machine.
//
// On success the bearer token is extracted from the Authorization response
// header and stored via SetToken.
func (h *httpAuthAdapter) LoginUser(ctx context.Context, creds models.Credentials) (models.User, *models.APIError) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Username: creds.Username, Password: creds.Password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		h.logger.Err(err).Str("username", creds.Username).Msg("login request transport failure")
		return models.User{}, &models.APIError{
			Code:    models.CodeServerUnavailable,
			Message: "server is unreachable, try again later",
		}
	}

	if apiErr := mapHTTPError(resp); apiErr != nil {
		return models.User{}, apiErr
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		h.logger.Err(err).Msg("login response without usable bearer token")
		return models.User{}, &models.APIError{
			Code:       models.CodeServerError,
			Message:    "malformed server response",
			HTTPStatus: resp.StatusCode(),
		}
	}

	h.SetToken(token)

	return result.User, nil
}
