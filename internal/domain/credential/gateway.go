package credential

import "context"

// Grant is the token material returned by the external authorization service
type Grant struct {
	AccessToken  string
	RefreshToken string
}

// AuthGateway is the outbound port to the external authorization service
type AuthGateway interface {
	// RequestToken performs a client_credentials grant request and returns
	// the issued token material. Any non-success response or transport
	// failure surfaces as an AUTH_FAILED domain error.
	RequestToken(ctx context.Context) (*Grant, error)
}
