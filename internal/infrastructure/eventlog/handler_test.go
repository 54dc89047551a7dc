package eventlog

import (
	"context"
	"testing"

	"github.com/invoicing/backend/internal/domain/billing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandler_Handle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := NewHandler(zap.New(core))

	client, err := billing.NewClient("20123456789", "Acme SA")
	require.NoError(t, err)
	events := client.GetDomainEvents()
	require.Len(t, events, 1)

	require.NoError(t, handler.Handle(context.Background(), events[0]))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "domain event", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, billing.EventTypeClientCreated, fields["event_type"])
	assert.Equal(t, "Client", fields["aggregate_type"])
}

func TestHandler_EventTypes(t *testing.T) {
	handler := NewHandler(zap.NewNop())

	assert.Empty(t, handler.EventTypes())
}
