package billing

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceRepository defines the persistence operations for Invoice aggregates.
// Implementations return fully-assembled aggregates (header, items and the
// owning client reference) with explicit queries; there is no lazy loading.
type InvoiceRepository interface {
	// FindByID finds an invoice by its ID, including its items
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByNumber finds an invoice by its human-readable number, including its items
	FindByNumber(ctx context.Context, number string) (*Invoice, error)
	// Create persists a new invoice and all of its items in a single
	// transaction; either everything is committed or nothing is
	Create(ctx context.Context, invoice *Invoice) error
	// Save updates an existing invoice header (items are immutable)
	Save(ctx context.Context, invoice *Invoice) error
}
