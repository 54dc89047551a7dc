package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
)

// ClientRepository defines the persistence operations for Client aggregates
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	// FindByRUC finds a client by its taxpayer identification number
	FindByRUC(ctx context.Context, ruc string) (*Client, error)
	// ExistsByRUC checks whether a client with the given RUC is registered
	ExistsByRUC(ctx context.Context, ruc string) (bool, error)
	// FindAll returns every client matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error
}
