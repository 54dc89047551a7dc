package credential

import (
	"time"

	"github.com/invoicing/backend/internal/domain/shared"
)

// DefaultFreshness is how long an issued token is considered reusable.
// The external service issues tokens with a typical 60-minute lifetime;
// a 5-minute safety margin is kept.
const DefaultFreshness = 55 * time.Minute

// APICredential is one issued credential from the external authorization
// service. Records form an append-only history; at most one record is
// active at a time.
type APICredential struct {
	shared.BaseEntity
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
	Active       bool
}

// NewAPICredential creates a new active credential issued now
func NewAPICredential(accessToken, refreshToken string) (*APICredential, error) {
	if accessToken == "" {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Access token cannot be empty")
	}
	return &APICredential{
		BaseEntity:   shared.NewBaseEntity(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		IssuedAt:     time.Now(),
		Active:       true,
	}, nil
}

// FreshAt reports whether the credential is still usable at the given
// instant under the given freshness window.
func (c *APICredential) FreshAt(now time.Time, freshness time.Duration) bool {
	return c.Active && now.Sub(c.IssuedAt) <= freshness
}
