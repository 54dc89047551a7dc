package shared

import "context"

// EventHandler consumes published domain events. EventTypes narrows the
// subscription; an empty slice subscribes the handler to everything.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	EventTypes() []string
}

// EventPublisher delivers domain events to subscribed handlers
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber registers handlers. When no explicit event types are
// given, the handler's own EventTypes decide what it receives.
type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
}

// EventBus is a publisher and subscriber in one
type EventBus interface {
	EventPublisher
	EventSubscriber
}
