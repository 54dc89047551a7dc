package credential

import "context"

// Repository defines the persistence operations for APICredential records
type Repository interface {
	// FindActive returns the most recently issued active credential, or
	// shared.ErrNotFound when no active credential exists
	FindActive(ctx context.Context) (*APICredential, error)
	// Replace retires every active credential and persists the given one
	// as the single active record, all within one transaction. Concurrent
	// calls serialize on the retirement update, so at most one active
	// record survives.
	Replace(ctx context.Context, cred *APICredential) error
}
