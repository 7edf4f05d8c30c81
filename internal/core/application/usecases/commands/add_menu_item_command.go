package commands

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand puts a dish on a restaurant's menu.
type AddMenuItemCommand struct {
	restaurantID kernel.RestaurantID
	name         string
	category     string
	price        kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand validates the restaurant, name and price.
func NewAddMenuItemCommand(
	restaurantID kernel.RestaurantID,
	name, category string,
	priceCents int64,
) (AddMenuItemCommand, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	price, priceErr := kernel.NewMoney(priceCents)

	if err := errors.Join(restaurantID.Validate(), nameErr, priceErr); err != nil {
		return AddMenuItemCommand{}, err
	}

	return AddMenuItemCommand{
		restaurantID: restaurantID,
		name:         name,
		category:     strings.TrimSpace(category),
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

func (c AddMenuItemCommand) Name() string {
	return c.name
}

func (c AddMenuItemCommand) Category() string {
	return c.category
}

func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}
