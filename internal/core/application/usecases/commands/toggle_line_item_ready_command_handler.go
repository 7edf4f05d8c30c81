package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"
)

// ToggleLineItemReadyCommandHandler flips is_ready with one conditional store statement,
// so two concurrent toggles of the same item always cancel out.
type ToggleLineItemReadyCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

func NewToggleLineItemReadyCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) ToggleLineItemReadyCommandHandler {
	return ToggleLineItemReadyCommandHandler{uowFactory: uowFactory, publisher: publisher}
}

// Handle returns the readiness flag the line item had before the toggle.
func (h *ToggleLineItemReadyCommandHandler) Handle(ctx context.Context, cmd ToggleLineItemReadyCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	toggled, err := uow.OrderRepository().ToggleLineItemReady(ctx, cmd.RestaurantID(), cmd.LineItemID())
	if err != nil {
		return false, err
	}

	publish(ctx, h.publisher, order.NewEvent(order.EventLineItemReadyToggled, cmd.RestaurantID(), toggled.OrderID).
		WithLineItems(toggled.LineItemID).
		WithPart(toggled.Part).
		WithReady(!toggled.Previous))

	return toggled.Previous, nil
}
