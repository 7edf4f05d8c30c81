package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrAdvanceCourseCommandIsNotConstructed = errors.New(
		"AdvanceCourseCommand must be created via NewAdvanceCourseCommand constructor",
	)
)

// AdvanceCourseCommand moves an order to its next course.
type AdvanceCourseCommand struct {
	OrderTarget
	guard guard.ConstructorGuard
}

func NewAdvanceCourseCommand(restaurantID kernel.RestaurantID, orderID kernel.SequenceID) (AdvanceCourseCommand, error) {
	target, err := newOrderTarget(restaurantID, orderID)
	if err != nil {
		return AdvanceCourseCommand{}, err
	}
	return AdvanceCourseCommand{OrderTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceCourseCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCourseCommandIsNotConstructed)
}
