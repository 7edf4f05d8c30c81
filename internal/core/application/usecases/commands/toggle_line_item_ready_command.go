package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrToggleLineItemReadyCommandIsNotConstructed = errors.New(
		"ToggleLineItemReadyCommand must be created via NewToggleLineItemReadyCommand constructor",
	)
)

// ToggleLineItemReadyCommand flips the readiness of one line item. The line item is
// located by id within the restaurant; the caller does not need to know its order.
type ToggleLineItemReadyCommand struct {
	restaurantID kernel.RestaurantID
	lineItemID   kernel.SequenceID

	guard guard.ConstructorGuard
}

func NewToggleLineItemReadyCommand(
	restaurantID kernel.RestaurantID,
	lineItemID kernel.SequenceID,
) (ToggleLineItemReadyCommand, error) {
	if err := errors.Join(restaurantID.Validate(), lineItemID.Validate()); err != nil {
		return ToggleLineItemReadyCommand{}, err
	}
	return ToggleLineItemReadyCommand{
		restaurantID: restaurantID,
		lineItemID:   lineItemID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ToggleLineItemReadyCommand) Validate() error {
	return c.guard.Validate(ErrToggleLineItemReadyCommandIsNotConstructed)
}

func (c ToggleLineItemReadyCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c ToggleLineItemReadyCommand) LineItemID() kernel.SequenceID {
	return c.lineItemID
}
