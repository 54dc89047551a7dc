package credential

import (
	"context"
	"errors"
	"time"

	"github.com/invoicing/backend/internal/domain/credential"
	"github.com/invoicing/backend/internal/domain/shared"
)

// TokenResponse represents the usable token returned to callers
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	IssuedAt    time.Time `json:"issued_at"`
	Refreshed   bool      `json:"refreshed"`
}

// TokenService hands out a cached API token, refreshing it through the
// external authorization service only when the stored one has gone stale.
type TokenService struct {
	repo      credential.Repository
	gateway   credential.AuthGateway
	freshness time.Duration
	now       func() time.Time
}

// NewTokenService creates a new TokenService. A non-positive freshness
// falls back to the default policy.
func NewTokenService(repo credential.Repository, gateway credential.AuthGateway, freshness time.Duration) *TokenService {
	if freshness <= 0 {
		freshness = credential.DefaultFreshness
	}
	return &TokenService{
		repo:      repo,
		gateway:   gateway,
		freshness: freshness,
		now:       time.Now,
	}
}

// CurrentToken returns the active token, reusing the stored credential
// while it is fresh and performing a refresh otherwise. A missing
// credential is not an error; it simply forces the first refresh.
func (s *TokenService) CurrentToken(ctx context.Context) (*TokenResponse, error) {
	cred, err := s.repo.FindActive(ctx)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != shared.ErrNotFound.Code {
			return nil, err
		}
		cred = nil
	}

	if cred != nil && cred.FreshAt(s.now(), s.freshness) {
		return &TokenResponse{
			AccessToken: cred.AccessToken,
			IssuedAt:    cred.IssuedAt,
			Refreshed:   false,
		}, nil
	}

	return s.Refresh(ctx)
}

// Refresh unconditionally requests a new token from the authorization
// service and stores it as the single active credential. The gateway is
// called exactly once per refresh; failures surface to the caller with
// the stored credential left untouched.
func (s *TokenService) Refresh(ctx context.Context) (*TokenResponse, error) {
	grant, err := s.gateway.RequestToken(ctx)
	if err != nil {
		return nil, err
	}

	cred, err := credential.NewAPICredential(grant.AccessToken, grant.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("AUTH_FAILED", "Authorization service returned an unusable token")
	}

	if err := s.repo.Replace(ctx, cred); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: cred.AccessToken,
		IssuedAt:    cred.IssuedAt,
		Refreshed:   true,
	}, nil
}
