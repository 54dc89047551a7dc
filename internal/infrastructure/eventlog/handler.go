package eventlog

import (
	"context"

	"github.com/invoicing/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Handler is an audit subscriber that writes every domain event to the
// structured log. It subscribes to all event types.
type Handler struct {
	log *zap.Logger
}

// NewHandler creates a new event log handler
func NewHandler(log *zap.Logger) *Handler {
	return &Handler{log: log.Named("eventlog")}
}

// Handle implements shared.EventHandler
func (h *Handler) Handle(ctx context.Context, event shared.DomainEvent) error {
	h.log.Info("domain event",
		zap.String("event_type", event.EventType()),
		zap.String("event_id", event.EventID().String()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.String("aggregate_id", event.AggregateID().String()),
		zap.Time("occurred_at", event.OccurredAt()),
	)
	return nil
}

// EventTypes implements shared.EventHandler; an empty list subscribes
// to every event
func (h *Handler) EventTypes() []string {
	return nil
}

// Ensure Handler implements EventHandler
var _ shared.EventHandler = (*Handler)(nil)
