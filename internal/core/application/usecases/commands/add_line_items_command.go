package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var (
	ErrAddLineItemsCommandIsNotConstructed = errors.New(
		"AddLineItemsCommand must be created via NewAddLineItemsCommand constructor",
	)
)

// AddLineItemsCommand appends a further round of dishes to an open order.
// The dishes join the order's current course.
type AddLineItemsCommand struct {
	OrderTarget
	lineItems []LineItemInput

	guard guard.ConstructorGuard
}

func NewAddLineItemsCommand(
	restaurantID kernel.RestaurantID,
	orderID kernel.SequenceID,
	lineItems []LineItemInput,
) (AddLineItemsCommand, error) {
	target, targetErr := newOrderTarget(restaurantID, orderID)
	if err := errors.Join(targetErr, validateLineItems(lineItems)); err != nil {
		return AddLineItemsCommand{}, err
	}
	return AddLineItemsCommand{
		OrderTarget: target,
		lineItems:   cloneLineItems(lineItems),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c AddLineItemsCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemsCommandIsNotConstructed)
}

func (c AddLineItemsCommand) LineItems() []LineItemInput {
	return cloneLineItems(c.lineItems)
}
