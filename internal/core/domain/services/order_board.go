package services

import (
	"cmp"
	"slices"

	"kitchen/internal/core/domain/model/order"
)

// OrderBoard selects and orders the orders shown on the POS and KDS screens.
type OrderBoard struct{}

// NewOrderBoard creates a new OrderBoard instance.
func NewOrderBoard() OrderBoard {
	return OrderBoard{}
}

// Filter keeps the orders whose current course has the given readiness.
// Served orders never match, whatever their line items say.
func (b OrderBoard) Filter(orders []*order.Order, status order.Readiness) ([]*order.Order, error) {
	var out []*order.Order
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if o.IsServed() {
			continue
		}
		r, err := o.Readiness()
		if err != nil {
			return nil, err
		}
		if r == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Unserved drops served orders.
func (b OrderBoard) Unserved(orders []*order.Order) []*order.Order {
	var out []*order.Order
	for _, o := range orders {
		if !o.IsServed() {
			out = append(out, o)
		}
	}
	return out
}

// SortByTime orders by creation time, oldest first. Ties keep id order.
// The input slice is left untouched.
func (b OrderBoard) SortByTime(orders []*order.Order) []*order.Order {
	out := slices.Clone(orders)
	slices.SortFunc(out, func(a, c *order.Order) int {
		return cmp.Compare(a.ID(), c.ID())
	})
	slices.SortStableFunc(out, func(a, c *order.Order) int {
		return a.CreatedAt().Compare(c.CreatedAt())
	})
	return out
}
