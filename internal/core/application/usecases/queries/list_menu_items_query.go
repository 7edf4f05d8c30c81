package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery lists a restaurant's menu, optionally restricted to one category.
type ListMenuItemsQuery struct {
	restaurantID kernel.RestaurantID
	category     string
	guard        guard.ConstructorGuard
}

// NewListMenuItemsQuery creates the query; an empty category lists the whole menu.
func NewListMenuItemsQuery(restaurantID kernel.RestaurantID, category string) (ListMenuItemsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListMenuItemsQuery{}, err
	}
	return ListMenuItemsQuery{restaurantID: restaurantID, category: category, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) RestaurantID() kernel.RestaurantID {
	return q.restaurantID
}

func (q ListMenuItemsQuery) Category() string {
	return q.category
}

// MenuItemView is one menu entry.
type MenuItemView struct {
	ID       kernel.SequenceID
	Name     string
	Category string
	Price    kernel.Money
}
