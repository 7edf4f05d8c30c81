package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// OrderTarget identifies one order of one restaurant. It is shared by the commands
// that act on a whole order without a payload.
type OrderTarget struct {
	restaurantID kernel.RestaurantID
	orderID      kernel.SequenceID
}

func newOrderTarget(restaurantID kernel.RestaurantID, orderID kernel.SequenceID) (OrderTarget, error) {
	if err := errors.Join(restaurantID.Validate(), orderID.Validate()); err != nil {
		return OrderTarget{}, err
	}
	return OrderTarget{restaurantID: restaurantID, orderID: orderID}, nil
}

func (t OrderTarget) RestaurantID() kernel.RestaurantID {
	return t.restaurantID
}

func (t OrderTarget) OrderID() kernel.SequenceID {
	return t.orderID
}

// DeleteOrderCommand removes an order, its line items and its table seating.
type DeleteOrderCommand struct {
	OrderTarget
	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(restaurantID kernel.RestaurantID, orderID kernel.SequenceID) (DeleteOrderCommand, error) {
	target, err := newOrderTarget(restaurantID, orderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{OrderTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
