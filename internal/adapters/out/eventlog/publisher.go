// Package eventlog is the event publisher used when no message broker is configured:
// every event becomes one structured log record.
package eventlog

import (
	"context"
	"log/slog"

	"kitchen/internal/core/domain/model/order"
)

// Publisher implements ports.EventPublisher on top of slog.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to logger, or slog.Default() when nil.
func NewPublisher(logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{logger: logger.With("component", "event-log")}
}

func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	for _, e := range events {
		attrs := []any{
			"event_id", e.ID.String(),
			"type", string(e.Type),
			"restaurant_id", e.RestaurantID.String(),
			"order_id", e.OrderID.Int64(),
		}
		if len(e.LineItemIDs) > 0 {
			ids := make([]int64, 0, len(e.LineItemIDs))
			for _, id := range e.LineItemIDs {
				ids = append(ids, id.Int64())
			}
			attrs = append(attrs, "line_item_ids", ids)
		}
		if e.Part > 0 {
			attrs = append(attrs, "part", e.Part.Int())
		}
		if e.Ready != nil {
			attrs = append(attrs, "ready", *e.Ready)
		}
		p.logger.InfoContext(ctx, "Kitchen event", attrs...)
	}
	return nil
}

// Close is a no-op.
func (p *Publisher) Close() error {
	return nil
}
