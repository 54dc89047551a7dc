package billing

import (
	"github.com/invoicing/backend/internal/domain/shared"
)

// Client event types
const (
	EventTypeClientCreated = "billing.client.created"
)

// ClientCreatedEvent is raised when a new client is registered
type ClientCreatedEvent struct {
	shared.BaseDomainEvent
	RUC       string `json:"ruc"`
	LegalName string `json:"legal_name"`
}

// NewClientCreatedEvent creates a new ClientCreatedEvent
func NewClientCreatedEvent(client *Client) *ClientCreatedEvent {
	return &ClientCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeClientCreated, "Client", client.ID),
		RUC:             client.RUC,
		LegalName:       client.LegalName,
	}
}
