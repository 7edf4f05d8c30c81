package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery selects the orders of a restaurant for the POS and KDS views.
//
// A nil status lists every order; a status restricts the list to unserved orders
// of that readiness. sortByTime orders the result by creation time, ties broken
// by order id.
//
// Example:
//
//	ready := order.Ready
//	query, err := NewListOrdersQuery(restaurantID, &ready, true)
type ListOrdersQuery struct {
	restaurantID kernel.RestaurantID
	status       *order.Readiness
	sortByTime   bool
	guard        guard.ConstructorGuard
}

func NewListOrdersQuery(
	restaurantID kernel.RestaurantID,
	status *order.Readiness,
	sortByTime bool,
) (ListOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	var s *order.Readiness
	if status != nil {
		v := *status
		s = &v
	}
	return ListOrdersQuery{
		restaurantID: restaurantID,
		status:       s,
		sortByTime:   sortByTime,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) RestaurantID() kernel.RestaurantID {
	return q.restaurantID
}

// Status returns the readiness filter and whether one was set.
func (q ListOrdersQuery) Status() (order.Readiness, bool) {
	if q.status == nil {
		return order.Neither, false
	}
	return *q.status, true
}

func (q ListOrdersQuery) SortByTime() bool {
	return q.sortByTime
}
