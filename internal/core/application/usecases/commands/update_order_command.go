package commands

import (
	"errors"
	"fmt"
	"math"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand replaces an order's header, course, date, served flag and line items.
// A nil date keeps the stored creation time.
// Line items carrying an id must already belong to the order; line items without one are added.
type UpdateOrderCommand struct {
	restaurantID kernel.RestaurantID
	orderID      kernel.SequenceID
	channel      order.Channel
	number       int
	tableID      *kernel.SequenceID
	part         order.Course
	served       bool
	date         *time.Time
	lineItems    []PatchLineItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates every field of the replacement state.
func NewUpdateOrderCommand(
	restaurantID kernel.RestaurantID,
	orderID kernel.SequenceID,
	channel order.Channel,
	number int,
	tableID *kernel.SequenceID,
	part order.Course,
	served bool,
	date *time.Time,
	lineItems []PatchLineItemInput,
) (UpdateOrderCommand, error) {
	var numberErr, tableErr, dateErr error
	if number < 0 {
		numberErr = errs.NewValueIsOutOfRangeError("number", number, 0, math.MaxInt32)
	}
	if tableID != nil {
		tableErr = tableID.Validate()
		id := *tableID
		tableID = &id
	}
	if date != nil {
		if date.IsZero() {
			dateErr = errs.NewValueIsRequiredError("date")
		}
		d := date.UTC().Truncate(time.Microsecond)
		date = &d
	}

	lineErrs := make([]error, 0, len(lineItems))
	seen := make(map[kernel.SequenceID]struct{})
	for _, li := range lineItems {
		lineErrs = append(lineErrs, li.validate())
		if li.ID == nil {
			continue
		}
		if _, dup := seen[*li.ID]; dup {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause("lineItems",
				fmt.Errorf("line item %d appears twice", *li.ID)))
		}
		seen[*li.ID] = struct{}{}
	}

	if err := errors.Join(
		restaurantID.Validate(),
		orderID.Validate(),
		channel.Validate(),
		numberErr,
		tableErr,
		dateErr,
		part.Validate(),
		errors.Join(lineErrs...),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	lines := make([]PatchLineItemInput, len(lineItems))
	for i, li := range lineItems {
		if li.ID != nil {
			id := *li.ID
			li.ID = &id
		}
		li.Mods = append([]order.Modification(nil), li.Mods...)
		lines[i] = li
	}

	return UpdateOrderCommand{
		restaurantID: restaurantID,
		orderID:      orderID,
		channel:      channel,
		number:       number,
		tableID:      tableID,
		part:         part,
		served:       served,
		date:         date,
		lineItems:    lines,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c UpdateOrderCommand) OrderID() kernel.SequenceID {
	return c.orderID
}

func (c UpdateOrderCommand) Channel() order.Channel {
	return c.channel
}

func (c UpdateOrderCommand) Number() int {
	return c.number
}

func (c UpdateOrderCommand) TableID() *kernel.SequenceID {
	return c.tableID
}

func (c UpdateOrderCommand) Part() order.Course {
	return c.part
}

func (c UpdateOrderCommand) Served() bool {
	return c.served
}

func (c UpdateOrderCommand) Date() *time.Time {
	if c.date == nil {
		return nil
	}
	d := *c.date
	return &d
}

func (c UpdateOrderCommand) LineItems() []PatchLineItemInput {
	return append([]PatchLineItemInput(nil), c.lineItems...)
}

// NewLineItemCount is the number of line items that need a fresh identifier.
func (c UpdateOrderCommand) NewLineItemCount() int {
	n := 0
	for _, li := range c.lineItems {
		if li.ID == nil {
			n++
		}
	}
	return n
}
