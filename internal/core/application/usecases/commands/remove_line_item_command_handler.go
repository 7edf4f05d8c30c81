package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// RemoveLineItemCommandHandler deletes a line item and lowers the order total by its price.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

func NewRemoveLineItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.RemoveLineItem(cmd.LineItemID()); err != nil {
		return err
	}

	if err = orders.RemoveLineItem(ctx, o, cmd.LineItemID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderLineItemRemoved, o.RestaurantID(), o.ID()).
		WithLineItems(cmd.LineItemID()))
	return nil
}
