package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrRemoveLineItemCommandIsNotConstructed = errors.New(
		"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
	)
)

// RemoveLineItemCommand takes one dish off an order.
type RemoveLineItemCommand struct {
	OrderTarget
	lineItemID kernel.SequenceID

	guard guard.ConstructorGuard
}

func NewRemoveLineItemCommand(
	restaurantID kernel.RestaurantID,
	orderID, lineItemID kernel.SequenceID,
) (RemoveLineItemCommand, error) {
	target, targetErr := newOrderTarget(restaurantID, orderID)
	if err := errors.Join(targetErr, lineItemID.Validate()); err != nil {
		return RemoveLineItemCommand{}, err
	}
	return RemoveLineItemCommand{OrderTarget: target, lineItemID: lineItemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

func (c RemoveLineItemCommand) LineItemID() kernel.SequenceID {
	return c.lineItemID
}
