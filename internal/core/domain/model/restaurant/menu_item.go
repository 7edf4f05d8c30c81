package restaurant

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError("MenuItem must be created via NewMenuItem")

// MenuItem is a dish on a restaurant's menu. Category is free text ("mains",
// "drinks") used to group the menu.
type MenuItem struct {
	id           kernel.SequenceID
	restaurantID kernel.RestaurantID
	name         string
	category     string
	price        kernel.Money
	guard        guard.ConstructorGuard
}

// NewMenuItem validates every field; name is required, category may be empty.
func NewMenuItem(
	id kernel.SequenceID,
	restaurantID kernel.RestaurantID,
	name, category string,
	price kernel.Money,
) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	_, priceErr := kernel.NewMoney(price.Cents())

	if err := errors.Join(id.Validate(), restaurantID.Validate(), nameErr, priceErr); err != nil {
		return nil, err
	}

	return &MenuItem{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		category:     strings.TrimSpace(category),
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.SequenceID {
	return m.id
}

func (m *MenuItem) RestaurantID() kernel.RestaurantID {
	return m.restaurantID
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Category() string {
	return m.category
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Menu indexes menu items by id.
type Menu map[kernel.SequenceID]*MenuItem

// NewMenu builds a Menu from a list of items.
func NewMenu(items []*MenuItem) Menu {
	m := make(Menu, len(items))
	for _, item := range items {
		m[item.id] = item
	}
	return m
}

// Lookup returns ObjectNotFoundError for ids that are not on the menu.
func (m Menu) Lookup(id kernel.SequenceID) (*MenuItem, error) {
	item, ok := m[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("menu item", id.Int64())
	}
	return item, nil
}
