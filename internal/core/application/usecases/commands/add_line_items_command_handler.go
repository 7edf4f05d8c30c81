package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// AddLineItemsCommandHandler adds dishes to an existing order at its current part
// and grows the total by their price snapshots.
type AddLineItemsCommandHandler struct {
	uowFactory UoWFactory
	allocator  ports.SequenceAllocator
	publisher  ports.EventPublisher
}

func NewAddLineItemsCommandHandler(
	uowFactory UoWFactory,
	allocator ports.SequenceAllocator,
	publisher ports.EventPublisher,
) AddLineItemsCommandHandler {
	return AddLineItemsCommandHandler{uowFactory: uowFactory, allocator: allocator, publisher: publisher}
}

// Handle returns the ids of the new line items in submission order.
func (h *AddLineItemsCommandHandler) Handle(ctx context.Context, cmd AddLineItemsCommand) ([]kernel.SequenceID, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.LineItems()
	ids, err := allocate(ctx, h.allocator, ports.CounterLineItem, len(lines))
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	menu, err := uow.RestaurantRepository().Menu(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}

	added := make([]*order.LineItem, 0, len(lines))
	for i, line := range lines {
		item, lookupErr := menu.Lookup(line.MenuItemID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		li, addErr := o.AddLineItem(ids[i], line.MenuItemID, item.Price(), line.Note, line.Mods)
		if addErr != nil {
			return nil, addErr
		}
		added = append(added, li)
	}

	if err = orders.AddLineItems(ctx, o, added); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderLineItemsAdded, o.RestaurantID(), o.ID()).
		WithPart(o.Part()).
		WithLineItems(ids...))

	return ids, nil
}
