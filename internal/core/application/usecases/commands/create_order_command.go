package commands

import (
	"errors"
	"math"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand submits a new order with its first round of dishes.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(restaurantID, order.DineIn, 12, &tableID, []LineItemInput{
//	    {MenuItemID: burgerID, Note: "medium"},
//	    {MenuItemID: friesID},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, allocator, publisher)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	restaurantID kernel.RestaurantID
	channel      order.Channel
	number       int
	tableID      *kernel.SequenceID
	lineItems    []LineItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the header and every line item.
// At least one line item is required.
func NewCreateOrderCommand(
	restaurantID kernel.RestaurantID,
	channel order.Channel,
	number int,
	tableID *kernel.SequenceID,
	lineItems []LineItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setHeader(channel, number, tableID),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c CreateOrderCommand) Channel() order.Channel {
	return c.channel
}

func (c CreateOrderCommand) Number() int {
	return c.number
}

// TableID returns the table the order is placed at, or nil.
func (c CreateOrderCommand) TableID() *kernel.SequenceID {
	return c.tableID
}

func (c CreateOrderCommand) LineItems() []LineItemInput {
	return cloneLineItems(c.lineItems)
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setHeader(channel order.Channel, number int, tableID *kernel.SequenceID) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if number < 0 {
		return errs.NewValueIsOutOfRangeError("number", number, 0, math.MaxInt32)
	}
	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return err
		}
		id := *tableID
		tableID = &id
	}
	c.channel = channel
	c.number = number
	c.tableID = tableID
	return nil
}

func (c *CreateOrderCommand) setLineItems(lines []LineItemInput) error {
	if err := validateLineItems(lines); err != nil {
		return err
	}
	c.lineItems = cloneLineItems(lines)
	return nil
}
