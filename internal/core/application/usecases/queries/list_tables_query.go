package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrListTablesQueryIsNotConstructed = errors.New(
	"ListTablesQuery must be created via NewListTablesQuery constructor",
)

// ListTablesQuery lists a restaurant's tables with the order currently seated at each.
type ListTablesQuery struct {
	restaurantID kernel.RestaurantID
	guard        guard.ConstructorGuard
}

func NewListTablesQuery(restaurantID kernel.RestaurantID) (ListTablesQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListTablesQuery{}, err
	}
	return ListTablesQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTablesQuery) Validate() error {
	return q.guard.Validate(ErrListTablesQueryIsNotConstructed)
}

func (q ListTablesQuery) RestaurantID() kernel.RestaurantID {
	return q.restaurantID
}

// TableView is one table; OrderID is nil for a free table.
type TableView struct {
	ID      kernel.SequenceID
	Number  int
	OrderID *kernel.SequenceID
}
