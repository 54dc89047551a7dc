package billing

import (
	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
)

// Invoice event types
const (
	EventTypeInvoiceCreated = "billing.invoice.created"
	EventTypeInvoiceVoided  = "billing.invoice.voided"
)

// InvoiceCreatedEvent is raised when a new invoice aggregate is assembled
type InvoiceCreatedEvent struct {
	shared.BaseDomainEvent
	Number   string    `json:"number"`
	ClientID uuid.UUID `json:"client_id"`
	Total    string    `json:"total"`
	IGV      string    `json:"igv"`
	Items    int       `json:"items"`
}

// NewInvoiceCreatedEvent creates a new InvoiceCreatedEvent
func NewInvoiceCreatedEvent(invoice *Invoice) *InvoiceCreatedEvent {
	return &InvoiceCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceCreated, "Invoice", invoice.ID),
		Number:          invoice.Number,
		ClientID:        invoice.ClientID,
		Total:           invoice.Total.String(),
		IGV:             invoice.IGV.String(),
		Items:           len(invoice.Items),
	}
}

// InvoiceVoidedEvent is raised when an invoice transitions to ANULADA
type InvoiceVoidedEvent struct {
	shared.BaseDomainEvent
	Number string `json:"number"`
}

// NewInvoiceVoidedEvent creates a new InvoiceVoidedEvent
func NewInvoiceVoidedEvent(invoice *Invoice) *InvoiceVoidedEvent {
	return &InvoiceVoidedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceVoided, "Invoice", invoice.ID),
		Number:          invoice.Number,
	}
}
