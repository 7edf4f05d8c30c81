package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies a full replacement to an order.
//
// The outcome is reported as a MatchResult so callers can tell a missing order
// (matched 0) from a patch that equals the stored state (matched 1, modified 0).
//
// Price snapshots: a line item that keeps its menu item keeps its original price;
// new line items and line items switched to another dish take the current menu price.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  ports.SequenceAllocator
	publisher  ports.EventPublisher
}

func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	allocator ports.SequenceAllocator,
	publisher ports.EventPublisher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory, allocator: allocator, publisher: publisher}
}

// Handle returns errs.ObjectNotFoundError with an empty MatchResult for unknown orders
// and errs.NoOpError with {1, 0} when nothing changed.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (ports.MatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.MatchResult{}, err
	}

	newIDs, err := allocate(ctx, h.allocator, ports.CounterLineItem, cmd.NewLineItemCount())
	if err != nil {
		return ports.MatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.MatchResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	restaurants := uow.RestaurantRepository()

	o, err := orders.Get(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return ports.MatchResult{}, err
	}
	previousTable := o.TableID()

	menu, err := restaurants.Menu(ctx, cmd.RestaurantID())
	if err != nil {
		return ports.MatchResult{}, err
	}

	patch := order.Patch{
		Channel:   cmd.Channel(),
		Number:    cmd.Number(),
		TableID:   cmd.TableID(),
		Part:      cmd.Part(),
		Served:    cmd.Served(),
		CreatedAt: cmd.Date(),
	}
	added := make([]kernel.SequenceID, 0, len(newIDs))
	for _, in := range cmd.LineItems() {
		pli := order.PatchLineItem{
			MenuItemID: in.MenuItemID,
			Note:       in.Note,
			Mods:       in.Mods,
			Ready:      in.Ready,
		}

		var existing *order.LineItem
		if in.ID != nil {
			var ok bool
			if existing, ok = o.LineItem(*in.ID); !ok {
				return ports.MatchResult{}, errs.NewObjectNotFoundError("line item", in.ID.Int64())
			}
			pli.ID = *in.ID
		} else {
			pli.ID = newIDs[len(added)]
			added = append(added, pli.ID)
		}

		if existing != nil && existing.MenuItemID() == in.MenuItemID {
			pli.Price = existing.Price()
		} else {
			item, lookupErr := menu.Lookup(in.MenuItemID)
			if lookupErr != nil {
				return ports.MatchResult{}, lookupErr
			}
			pli.Price = item.Price()
		}
		patch.LineItems = append(patch.LineItems, pli)
	}

	changed, err := o.Apply(patch)
	if err != nil {
		return ports.MatchResult{}, err
	}
	if !changed {
		return ports.MatchResult{Matched: 1}, errs.NewNoOpError("order", cmd.OrderID().Int64())
	}

	if err = orders.Save(ctx, o); err != nil {
		return ports.MatchResult{}, err
	}

	if err = h.moveTable(ctx, restaurants, o, previousTable); err != nil {
		return ports.MatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.MatchResult{}, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderUpdated, o.RestaurantID(), o.ID()).
		WithPart(o.Part()).
		WithLineItems(added...))

	return ports.MatchResult{Matched: 1, Modified: 1}, nil
}

// moveTable releases the previous table and seats the order at its new one.
func (h *UpdateOrderCommandHandler) moveTable(
	ctx context.Context,
	restaurants ports.RestaurantRepository,
	o *order.Order,
	previous *kernel.SequenceID,
) error {
	current := o.TableID()
	if previous == nil && current == nil || previous != nil && current != nil && *previous == *current {
		return nil
	}

	if previous != nil {
		if _, err := restaurants.ReleaseTablesOf(ctx, o.RestaurantID(), o.ID()); err != nil {
			return err
		}
	}
	if current != nil {
		table, err := restaurants.GetTable(ctx, o.RestaurantID(), *current)
		if err != nil {
			return err
		}
		table.Seat(o.ID())
		return restaurants.SaveTable(ctx, table)
	}
	return nil
}
