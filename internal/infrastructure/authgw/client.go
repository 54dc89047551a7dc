package authgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/invoicing/backend/internal/domain/credential"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// maxResponseSize caps token endpoint responses (1MB)
const maxResponseSize = 1 << 20

// Client talks to the external authorization service's token endpoint.
// It implements credential.AuthGateway.
type Client struct {
	tokenURL   string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a token client from the auth configuration
func NewClient(cfg config.AuthConfig, log *zap.Logger) *Client {
	return &Client{
		tokenURL: cfg.TokenURL,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log.Named("authgw"),
	}
}

type tokenRequest struct {
	GrantType string `json:"grant_type"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RequestToken performs a client_credentials grant against the token
// endpoint. Transport failures and non-200 responses both surface as
// AUTH_FAILED domain errors; upstream response bodies are never passed
// through to callers.
func (c *Client) RequestToken(ctx context.Context) (*credential.Grant, error) {
	body, err := json.Marshal(tokenRequest{GrantType: "client_credentials"})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, shared.NewDomainError("AUTH_FAILED", "Invalid authorization service configuration")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("token request failed", zap.Error(err))
		return nil, shared.NewDomainError("AUTH_FAILED", "Authorization service is unreachable")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, shared.NewDomainError("AUTH_FAILED", "Failed to read authorization service response")
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error("token request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("url", c.tokenURL),
		)
		return nil, shared.NewDomainError("AUTH_FAILED",
			fmt.Sprintf("Authorization service responded with status %d", resp.StatusCode))
	}

	var parsed tokenResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, shared.NewDomainError("AUTH_FAILED", "Authorization service returned a malformed response")
	}
	if parsed.AccessToken == "" {
		return nil, shared.NewDomainError("AUTH_FAILED", "Authorization service response is missing the access token")
	}

	return &credential.Grant{
		AccessToken:  parsed.AccessToken,
		RefreshToken: parsed.RefreshToken,
	}, nil
}

// Ensure Client implements credential.AuthGateway
var _ credential.AuthGateway = (*Client)(nil)
