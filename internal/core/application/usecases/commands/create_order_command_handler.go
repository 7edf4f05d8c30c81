package commands

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Identifiers for the order and each line item are minted before the transaction
// starts, so a rolled back creation burns them; they are never reused.
// Within the transaction the handler checks the restaurant, snapshots menu prices
// into the line items and seats the order at its table.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  ports.SequenceAllocator
	publisher  ports.EventPublisher
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	allocator ports.SequenceAllocator,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle processes the order creation command and returns the new order id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.SequenceID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	lines := cmd.LineItems()
	orderID, err := h.allocator.Next(ctx, ports.CounterOrder)
	if err != nil {
		return 0, err
	}
	lineIDs, err := allocate(ctx, h.allocator, ports.CounterLineItem, len(lines))
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurants := uow.RestaurantRepository()
	if _, err = restaurants.Get(ctx, cmd.RestaurantID()); err != nil {
		return 0, err
	}

	menu, err := restaurants.Menu(ctx, cmd.RestaurantID())
	if err != nil {
		return 0, err
	}

	createdAt := h.now().UTC().Truncate(time.Microsecond)
	o, err := order.NewOrder(orderID, cmd.RestaurantID(), cmd.Channel(), cmd.Number(), cmd.TableID(), createdAt)
	if err != nil {
		return 0, err
	}

	for i, line := range lines {
		item, lookupErr := menu.Lookup(line.MenuItemID)
		if lookupErr != nil {
			return 0, lookupErr
		}
		if _, err = o.AddLineItem(lineIDs[i], line.MenuItemID, item.Price(), line.Note, line.Mods); err != nil {
			return 0, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if tableID := cmd.TableID(); tableID != nil {
		table, tableErr := restaurants.GetTable(ctx, cmd.RestaurantID(), *tableID)
		if tableErr != nil {
			return 0, tableErr
		}
		table.Seat(orderID)
		if err = restaurants.SaveTable(ctx, table); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderCreated, o.RestaurantID(), o.ID()).
		WithPart(o.Part()).
		WithLineItems(lineIDs...))

	return orderID, nil
}
