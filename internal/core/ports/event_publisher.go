package ports

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// EventPublisher delivers kitchen events to interested consumers (front-of-house
// screens, notification services). Publish is called after the transaction that
// produced the events has committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
	Close() error
}
