package commands

import (
	"errors"
	"math"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrAddTableCommandIsNotConstructed = errors.New(
		"AddTableCommand must be created via NewAddTableCommand constructor",
	)
)

// AddTableCommand registers a physical table with its floor number.
type AddTableCommand struct {
	restaurantID kernel.RestaurantID
	number       int

	guard guard.ConstructorGuard
}

func NewAddTableCommand(restaurantID kernel.RestaurantID, number int) (AddTableCommand, error) {
	var numberErr error
	if number < 1 {
		numberErr = errs.NewValueIsOutOfRangeError("number", number, 1, math.MaxInt32)
	}
	if err := errors.Join(restaurantID.Validate(), numberErr); err != nil {
		return AddTableCommand{}, err
	}
	return AddTableCommand{restaurantID: restaurantID, number: number, guard: guard.NewConstructorGuard()}, nil
}

func (c AddTableCommand) Validate() error {
	return c.guard.Validate(ErrAddTableCommandIsNotConstructed)
}

func (c AddTableCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c AddTableCommand) Number() int {
	return c.number
}
