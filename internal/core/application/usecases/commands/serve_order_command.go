package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrServeOrderCommandIsNotConstructed = errors.New(
		"ServeOrderCommand must be created via NewServeOrderCommand constructor",
	)
)

// ServeOrderCommand marks an order as handed over to the guest.
type ServeOrderCommand struct {
	OrderTarget
	guard guard.ConstructorGuard
}

func NewServeOrderCommand(restaurantID kernel.RestaurantID, orderID kernel.SequenceID) (ServeOrderCommand, error) {
	target, err := newOrderTarget(restaurantID, orderID)
	if err != nil {
		return ServeOrderCommand{}, err
	}
	return ServeOrderCommand{OrderTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}
