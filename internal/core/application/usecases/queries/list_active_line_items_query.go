package queries

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrListActiveLineItemsQueryIsNotConstructed = errors.New(
	"ListActiveLineItemsQuery must be created via NewListActiveLineItemsQuery constructor",
)

// ParseLineItemStatus converts the front-of-house status filter: "ready" selects
// ready items, "pending" selects items still being prepared.
func ParseLineItemStatus(s string) (bool, error) {
	switch s {
	case "ready":
		return true, nil
	case "pending":
		return false, nil
	default:
		return false, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not ready or pending", s))
	}
}

// ListActiveLineItemsQuery selects the current-course line items of every unserved
// order of a restaurant, flattened with their order header. A nil ready lists both.
type ListActiveLineItemsQuery struct {
	restaurantID kernel.RestaurantID
	ready        *bool
	guard        guard.ConstructorGuard
}

func NewListActiveLineItemsQuery(restaurantID kernel.RestaurantID, ready *bool) (ListActiveLineItemsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListActiveLineItemsQuery{}, err
	}

	var r *bool
	if ready != nil {
		v := *ready
		r = &v
	}
	return ListActiveLineItemsQuery{restaurantID: restaurantID, ready: r, guard: guard.NewConstructorGuard()}, nil
}

func (q ListActiveLineItemsQuery) Validate() error {
	return q.guard.Validate(ErrListActiveLineItemsQueryIsNotConstructed)
}

func (q ListActiveLineItemsQuery) RestaurantID() kernel.RestaurantID {
	return q.restaurantID
}

// Ready returns the readiness filter and whether one was set.
func (q ListActiveLineItemsQuery) Ready() (bool, bool) {
	if q.ready == nil {
		return false, false
	}
	return *q.ready, true
}

// ActiveLineItemView is one row of the front-of-house list.
type ActiveLineItemView struct {
	LineItemID  kernel.SequenceID
	OrderID     kernel.SequenceID
	OrderNumber int
	Channel     string
	TableID     *kernel.SequenceID
	CreatedAt   time.Time
	MenuItemID  kernel.SequenceID
	Name        string
	Note        string
	Mods        []ModView
	IsReady     bool
	Part        int
}
