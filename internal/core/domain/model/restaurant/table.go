package restaurant

import (
	"errors"
	"math"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrTableIsNotConstructed = errs.NewValueIsRequiredError("Table must be created via NewTable")

// Table is a physical table. OrderID points at the order currently seated there.
type Table struct {
	id           kernel.SequenceID
	restaurantID kernel.RestaurantID
	number       int
	orderID      *kernel.SequenceID
	guard        guard.ConstructorGuard
}

// NewTable creates a free table.
func NewTable(id kernel.SequenceID, restaurantID kernel.RestaurantID, number int) (*Table, error) {
	return RestoreTable(id, restaurantID, number, nil)
}

// RestoreTable rebuilds a table, including its current order pointer.
func RestoreTable(
	id kernel.SequenceID,
	restaurantID kernel.RestaurantID,
	number int,
	orderID *kernel.SequenceID,
) (*Table, error) {
	var numberErr, orderErr error
	if number < 1 {
		numberErr = errs.NewValueIsOutOfRangeError("number", number, 1, math.MaxInt32)
	}
	if orderID != nil {
		orderErr = orderID.Validate()
	}
	if err := errors.Join(id.Validate(), restaurantID.Validate(), numberErr, orderErr); err != nil {
		return nil, err
	}

	t := &Table{id: id, restaurantID: restaurantID, number: number, guard: guard.NewConstructorGuard()}
	if orderID != nil {
		t.Seat(*orderID)
	}
	return t, nil
}

func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

func (t *Table) ID() kernel.SequenceID {
	return t.id
}

func (t *Table) RestaurantID() kernel.RestaurantID {
	return t.restaurantID
}

func (t *Table) Number() int {
	return t.number
}

// OrderID returns the seated order, or nil for a free table.
func (t *Table) OrderID() *kernel.SequenceID {
	if t.orderID == nil {
		return nil
	}
	id := *t.orderID
	return &id
}

// Seat points the table at an order, replacing any previous pointer.
func (t *Table) Seat(orderID kernel.SequenceID) {
	t.orderID = &orderID
}

// Release frees the table.
func (t *Table) Release() {
	t.orderID = nil
}

func (t *Table) IsFree() bool {
	return t.orderID == nil
}
