package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
)

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
	clientRepo  billing.ClientRepository
	events      shared.EventPublisher
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, clientRepo billing.ClientRepository, events shared.EventPublisher) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		events:      events,
	}
}

// Create issues a new invoice for an existing client
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client id is not a valid UUID")
	}

	// Verify the client is registered before issuing anything
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	items := make([]billing.ItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = billing.ItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	invoice, err := billing.NewInvoice(clientID, req.Total, items)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		// The generated number carries a random suffix; on the rare
		// collision with an existing invoice, regenerate once and retry
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) || domainErr.Code != shared.ErrAlreadyExists.Code {
			return nil, err
		}
		invoice.Renumber()
		if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
			return nil, err
		}
	}

	s.publishEvents(ctx, invoice)

	response := ToInvoiceResponse(invoice, client)
	return &response, nil
}

// GetByNumber retrieves a full invoice, including its items and client
func (s *InvoiceService) GetByNumber(ctx context.Context, number string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByID(ctx, invoice.ClientID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice, client)
	return &response, nil
}

// Void marks an invoice as ANULADA. Voiding an already-voided invoice
// succeeds without changing anything.
func (s *InvoiceService) Void(ctx context.Context, number string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if !invoice.IsVoided() {
		invoice.Void()
		if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
			return nil, err
		}
		s.publishEvents(ctx, invoice)
	}

	response := ToInvoiceResponse(invoice, nil)
	return &response, nil
}

func (s *InvoiceService) publishEvents(ctx context.Context, invoice *billing.Invoice) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, invoice.GetDomainEvents()...)
	invoice.ClearDomainEvents()
}
