package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// ToggledLineItem is the outcome of OrderRepository.ToggleLineItemReady.
type ToggledLineItem struct {
	OrderID    kernel.SequenceID
	LineItemID kernel.SequenceID
	Part       order.Course
	// Previous is the readiness flag before the toggle.
	Previous bool
}

// OrderRepository defines the persistence contract for order aggregates.
// Every lookup is scoped to a restaurant: an order id from another restaurant is not found.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with all its line items in submission order.
	// Returns errs.ObjectNotFoundError when the order does not exist in the restaurant.
	Get(ctx context.Context, restaurantID kernel.RestaurantID, id kernel.SequenceID) (*order.Order, error)

	// List retrieves every order of a restaurant ordered by id.
	List(ctx context.Context, restaurantID kernel.RestaurantID) ([]*order.Order, error)

	// Save overwrites the header and the line item list of an existing order.
	// Line items missing from the aggregate are deleted.
	Save(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and its line items.
	Delete(ctx context.Context, restaurantID kernel.RestaurantID, id kernel.SequenceID) (MatchResult, error)

	// AdvancePart increments the order's current part in a single statement.
	// Line items are never touched.
	AdvancePart(ctx context.Context, restaurantID kernel.RestaurantID, id kernel.SequenceID) (MatchResult, error)

	// MarkServed sets served = true. Serving an already served order matches but modifies nothing.
	MarkServed(ctx context.Context, restaurantID kernel.RestaurantID, id kernel.SequenceID) (MatchResult, error)

	// ToggleLineItemReady flips a line item's readiness in a single conditional statement
	// and reports the value it had before. Returns errs.ObjectNotFoundError when the
	// line item does not exist in the restaurant.
	ToggleLineItemReady(
		ctx context.Context,
		restaurantID kernel.RestaurantID,
		lineItemID kernel.SequenceID,
	) (ToggledLineItem, error)

	// AddLineItems inserts items already appended to aggregate and stores its new total.
	AddLineItems(ctx context.Context, aggregate *order.Order, items []*order.LineItem) error

	// RemoveLineItem deletes a line item already removed from aggregate and stores its new total.
	RemoveLineItem(ctx context.Context, aggregate *order.Order, lineItemID kernel.SequenceID) error
}
