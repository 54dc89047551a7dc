package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/invoicing/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo billing.ClientRepository
	events     shared.EventPublisher
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo billing.ClientRepository, events shared.EventPublisher) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		events:     events,
	}
}

// Create registers a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	// Check if RUC already exists
	exists, err := s.clientRepo.ExistsByRUC(ctx, req.RUC)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this RUC already exists")
	}

	client, err := billing.NewClient(req.RUC, req.LegalName)
	if err != nil {
		return nil, err
	}

	if req.Address != "" || req.Email != "" {
		if err := client.SetContact(req.Address, req.Email); err != nil {
			return nil, err
		}
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, client)

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves all registered clients with optional filtering
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.RUC != "" {
		domainFilter = domainFilter.With("ruc", filter.RUC)
	}

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses, nil
}

// publishEvents drains the aggregate's pending events onto the bus.
// Publication failures do not fail the business operation.
func (s *ClientService) publishEvents(ctx context.Context, client *billing.Client) {
	if s.events == nil {
		return
	}
	_ = s.events.Publish(ctx, client.GetDomainEvents()...)
	client.ClearDomainEvents()
}
