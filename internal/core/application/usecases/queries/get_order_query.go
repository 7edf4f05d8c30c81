package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order of a restaurant.
type GetOrderQuery struct {
	restaurantID kernel.RestaurantID
	orderID      kernel.SequenceID
	guard        guard.ConstructorGuard
}

func NewGetOrderQuery(restaurantID kernel.RestaurantID, orderID kernel.SequenceID) (GetOrderQuery, error) {
	if err := errors.Join(restaurantID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{restaurantID: restaurantID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) RestaurantID() kernel.RestaurantID {
	return q.restaurantID
}

func (q GetOrderQuery) OrderID() kernel.SequenceID {
	return q.orderID
}
