package order

import (
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
)

// ModOperation is what a guest asked to change about a dish.
type ModOperation string

const (
	ModAdd     ModOperation = "add"
	ModRemove  ModOperation = "remove"
	ModAllergy ModOperation = "allergy"
)

// Validate accepts add, remove and allergy.
func (op ModOperation) Validate() error {
	switch op {
	case ModAdd, ModRemove, ModAllergy:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("mod", fmt.Errorf("%q is not a valid operation", string(op)))
	}
}

// Modification is one entry of a line item's modification list, e.g. {remove, onion}.
type Modification struct {
	operation  ModOperation
	ingredient string
}

// NewModification validates the operation and requires an ingredient name.
func NewModification(operation ModOperation, ingredient string) (Modification, error) {
	if err := operation.Validate(); err != nil {
		return Modification{}, err
	}
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return Modification{}, errs.NewValueIsRequiredError("ingredient")
	}
	return Modification{operation: operation, ingredient: ingredient}, nil
}

func (m Modification) Operation() ModOperation {
	return m.operation
}

func (m Modification) Ingredient() string {
	return m.ingredient
}

func (m Modification) String() string {
	return string(m.operation) + " " + m.ingredient
}

// Modifications is an ordered modification list.
type Modifications []Modification

// SameSequence reports whether both lists hold equal elements in the same order.
// [add cheese, remove onion] and [remove onion, add cheese] are different sequences.
func (m Modifications) SameSequence(other Modifications) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

func (m Modifications) clone() Modifications {
	if len(m) == 0 {
		return nil
	}
	out := make(Modifications, len(m))
	copy(out, m)
	return out
}
