package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// DeleteOrderCommandHandler deletes an order and frees its table in one transaction.
// Identifiers of the deleted order and line items are never handed out again.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory, publisher ports.EventPublisher) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (ports.MatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.MatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.MatchResult{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, err := uow.OrderRepository().Delete(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return ports.MatchResult{}, err
	}
	if err = result.Err("order", cmd.OrderID().Int64()); err != nil {
		return result, err
	}

	if _, err = uow.RestaurantRepository().ReleaseTablesOf(ctx, cmd.RestaurantID(), cmd.OrderID()); err != nil {
		return ports.MatchResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ports.MatchResult{}, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderDeleted, cmd.RestaurantID(), cmd.OrderID()))
	return result, nil
}
