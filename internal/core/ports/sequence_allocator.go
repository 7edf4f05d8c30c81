// Package ports defines the contracts between the kitchen core and its infrastructure:
// storage of orders and restaurants, the sequence allocator, transactions and event publishing.
// These interfaces establish the dependency inversion that keeps the domain testable.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
)

// Counter names used with SequenceAllocator.Next.
const (
	CounterOrder    = "order"
	CounterLineItem = "line-item"
	CounterMenuItem = "menu-item"
	CounterTable    = "table"
)

// SequenceAllocator mints numeric identifiers from named counters.
//
// Next atomically increments the named counter and returns the new value.
// A counter that does not exist yet is created at 0, so its first value is 1.
// Values strictly increase per counter and are never handed out twice, even
// when the entity they were minted for is deleted or its transaction rolls back.
//
// Example:
//
//	id, err := allocator.Next(ctx, ports.CounterOrder)
//	if err != nil {
//	    return err // errs.ErrStoreUnavailable
//	}
type SequenceAllocator interface {
	Next(ctx context.Context, counter string) (kernel.SequenceID, error)
}
