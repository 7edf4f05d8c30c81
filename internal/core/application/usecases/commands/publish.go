package commands

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// publishTimeout bounds event delivery so a slow broker cannot hold a request open.
const publishTimeout = 5 * time.Second

// publish hands committed events to the publisher. A delivery failure is logged
// and never turns a committed write into an error.
func publish(ctx context.Context, publisher ports.EventPublisher, events ...order.Event) {
	if publisher == nil || len(events) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, events...); err != nil {
		slog.Default().WarnContext(ctx, "Failed to publish kitchen events",
			"type", string(events[0].Type),
			"count", len(events),
			"error", err)
	}
}

// allocate mints n identifiers from one counter. It runs outside any transaction:
// the allocator commits each increment on its own.
func allocate(ctx context.Context, allocator ports.SequenceAllocator, counter string, n int) ([]kernel.SequenceID, error) {
	ids := make([]kernel.SequenceID, 0, n)
	for range n {
		id, err := allocator.Next(ctx, counter)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
