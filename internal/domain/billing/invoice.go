package billing

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusGenerated InvoiceStatus = "GENERADA"
	InvoiceStatusVoided    InvoiceStatus = "ANULADA"
)

// IGVRate is the fixed value-added tax rate applied to invoice totals (18%)
var IGVRate = decimal.NewFromFloat(0.18)

// invoiceNumberPrefix is the literal prefix of every generated invoice number
const invoiceNumberPrefix = "F"

// Invoice is the aggregate root for an issued invoice and its line items
type Invoice struct {
	shared.BaseAggregateRoot
	Number   string
	IssuedAt time.Time
	ClientID uuid.UUID
	Total    decimal.Decimal
	IGV      decimal.Decimal
	Status   InvoiceStatus
	Items    []InvoiceItem
}

// InvoiceItem is a single line of an invoice. Items are created only as part
// of invoice creation and are never updated independently.
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ItemInput describes a line item to be added to a new invoice
type ItemInput struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// NewInvoice assembles a complete invoice aggregate: it generates the invoice
// number, derives the IGV from the caller-supplied total and computes each
// item subtotal as quantity x unit price.
func NewInvoice(clientID uuid.UUID, total decimal.Decimal, items []ItemInput) (*Invoice, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client reference is required")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Total cannot be negative")
	}

	now := time.Now()
	invoice := &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            NewInvoiceNumber(now),
		IssuedAt:          now,
		ClientID:          clientID,
		Total:             total,
		IGV:               total.Mul(IGVRate),
		Status:            InvoiceStatusGenerated,
	}

	invoice.Items = make([]InvoiceItem, 0, len(items))
	for _, input := range items {
		item, err := newInvoiceItem(invoice.ID, input)
		if err != nil {
			return nil, err
		}
		invoice.Items = append(invoice.Items, item)
	}

	invoice.AddDomainEvent(NewInvoiceCreatedEvent(invoice))

	return invoice, nil
}

func newInvoiceItem(invoiceID uuid.UUID, input ItemInput) (InvoiceItem, error) {
	if input.Description == "" {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", "Item description cannot be empty")
	}
	if len(input.Description) > 200 {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", "Item description cannot exceed 200 characters")
	}
	if input.Quantity < 0 {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", "Item quantity cannot be negative")
	}
	if input.UnitPrice.IsNegative() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_ITEM", "Item unit price cannot be negative")
	}

	return InvoiceItem{
		BaseEntity:  shared.NewBaseEntity(),
		InvoiceID:   invoiceID,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Subtotal:    input.UnitPrice.Mul(decimal.NewFromInt(int64(input.Quantity))),
	}, nil
}

// Void transitions the invoice to ANULADA. Voiding an already-voided invoice
// is a documented no-op; the transition is one-way.
func (i *Invoice) Void() {
	if i.Status == InvoiceStatusVoided {
		return
	}
	i.Status = InvoiceStatusVoided
	i.Touch()
	i.AddDomainEvent(NewInvoiceVoidedEvent(i))
}

// Renumber assigns a fresh invoice number after a uniqueness conflict.
// Any buffered creation event is updated so it carries the number that
// actually got persisted, not the discarded one.
func (i *Invoice) Renumber() {
	i.Number = NewInvoiceNumber(i.IssuedAt)
	for _, event := range i.GetDomainEvents() {
		if created, ok := event.(*InvoiceCreatedEvent); ok {
			created.Number = i.Number
		}
	}
}

// IsVoided returns true if the invoice has been voided
func (i *Invoice) IsVoided() bool {
	return i.Status == InvoiceStatusVoided
}

// ItemTotal returns the sum of all item subtotals. The invoice total is
// caller-supplied and may diverge from this sum; callers can compare the two.
func (i *Invoice) ItemTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range i.Items {
		sum = sum.Add(item.Subtotal)
	}
	return sum
}

// NewInvoiceNumber generates a human-readable invoice number: the literal
// prefix, the issue date as YYYYMMDD and a random 6-character hex suffix.
// Uniqueness is probabilistic; the persistence layer enforces it with a
// unique constraint.
func NewInvoiceNumber(now time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand is expected to never fail; fall back to a
		// time-derived suffix rather than panic in a request path
		return invoiceNumberPrefix + now.Format("20060102") + "-" + hex.EncodeToString([]byte{byte(now.Nanosecond()), byte(now.Nanosecond() >> 8), byte(now.Nanosecond() >> 16)})
	}
	return invoiceNumberPrefix + now.Format("20060102") + "-" + hex.EncodeToString(suffix)
}
