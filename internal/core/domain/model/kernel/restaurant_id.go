package kernel

import (
	"fmt"

	"kitchen/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrRestaurantIDIsNotConstructed is returned when validating a zero-value RestaurantID.
var ErrRestaurantIDIsNotConstructed = errs.NewValueIsRequiredError(
	"RestaurantID must be created via NewRestaurantID or ParseRestaurantID")

// RestaurantID identifies a restaurant. Every order, line item, menu item and
// table is owned by exactly one restaurant.
type RestaurantID struct {
	id uuid.UUID
}

// NewRestaurantID generates a random (version 4) identifier.
func NewRestaurantID() RestaurantID {
	return RestaurantID{id: uuid.New()}
}

// ParseRestaurantID parses the textual form accepted by uuid.Parse.
func ParseRestaurantID(s string) (RestaurantID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RestaurantID{}, errs.NewValueIsInvalidErrorWithCause("restaurantId", fmt.Errorf("%q: %w", s, err))
	}
	return RestaurantIDFromUUID(id)
}

// RestaurantIDFromUUID wraps an already parsed UUID, rejecting uuid.Nil.
func RestaurantIDFromUUID(id uuid.UUID) (RestaurantID, error) {
	r := RestaurantID{id: id}
	if err := r.Validate(); err != nil {
		return RestaurantID{}, err
	}
	return r, nil
}

func (r RestaurantID) UUID() uuid.UUID {
	return r.id
}

func (r RestaurantID) String() string {
	return r.id.String()
}

func (r RestaurantID) IsEqual(other RestaurantID) bool {
	return r.id == other.id
}

// Validate reports ErrRestaurantIDIsNotConstructed for the zero value.
func (r RestaurantID) Validate() error {
	if r.id == uuid.Nil {
		return ErrRestaurantIDIsNotConstructed
	}
	return nil
}
