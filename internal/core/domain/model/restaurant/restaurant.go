package restaurant

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errs.NewValueIsRequiredError("Restaurant must be created via NewRestaurant")

// Restaurant is the root owner of menu items, tables and orders.
type Restaurant struct {
	id    kernel.RestaurantID
	name  string
	guard guard.ConstructorGuard
}

// NewRestaurant creates a restaurant with a fresh identifier.
func NewRestaurant(name string) (*Restaurant, error) {
	return RestoreRestaurant(kernel.NewRestaurantID(), name)
}

// RestoreRestaurant rebuilds a restaurant from persisted state.
func RestoreRestaurant(id kernel.RestaurantID, name string) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return nil, err
	}
	return &Restaurant{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.RestaurantID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}
