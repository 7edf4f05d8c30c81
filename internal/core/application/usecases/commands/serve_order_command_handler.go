package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// ServeOrderCommandHandler sets the terminal served flag. Serving twice is a no-op.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

func NewServeOrderCommandHandler(uowFactory OrderUoWFactory, publisher ports.EventPublisher) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

func (h *ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) (ports.MatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.MatchResult{}, err
	}

	uow := h.uowFactory.Create()
	result, err := uow.OrderRepository().MarkServed(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return ports.MatchResult{}, err
	}
	if err = result.Err("order", cmd.OrderID().Int64()); err != nil {
		return result, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderServed, cmd.RestaurantID(), cmd.OrderID()))
	return result, nil
}
