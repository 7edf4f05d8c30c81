package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// AdvanceCourseCommandHandler increments an order's part with a single store statement.
//
// There is no readiness precondition and line items are never touched: items of the
// previous course simply stop counting towards readiness.
type AdvanceCourseCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

func NewAdvanceCourseCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) AdvanceCourseCommandHandler {
	return AdvanceCourseCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

func (h *AdvanceCourseCommandHandler) Handle(ctx context.Context, cmd AdvanceCourseCommand) (ports.MatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return ports.MatchResult{}, err
	}

	uow := h.uowFactory.Create()
	result, err := uow.OrderRepository().AdvancePart(ctx, cmd.RestaurantID(), cmd.OrderID())
	if err != nil {
		return ports.MatchResult{}, err
	}
	if err = result.Err("order", cmd.OrderID().Int64()); err != nil {
		return result, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventOrderCourseAdvanced, cmd.RestaurantID(), cmd.OrderID()))
	return result, nil
}
