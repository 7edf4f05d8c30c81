package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Readiness is the kitchen state of an order's current course.
type Readiness int

const (
	// Neither: no item of the current course is ready, or the course is empty.
	Neither Readiness = iota
	// Pending: some but not all items of the current course are ready.
	Pending
	// Ready: every item of the current course is ready.
	Ready
)

var readinessNames = map[Readiness]string{
	Neither: "neither",
	Pending: "pending",
	Ready:   "ready",
}

func (r Readiness) String() string {
	if name, ok := readinessNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Readiness(%d)", int(r))
}

// ParseReadiness converts a status filter value ("pending" or "ready") into a Readiness.
// "neither" is accepted for completeness.
func ParseReadiness(s string) (Readiness, error) {
	for r, name := range readinessNames {
		if name == s {
			return r, nil
		}
	}
	return Neither, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a readiness status", s))
}

// Classify computes the readiness of the items whose part equals the given course.
//
// Items of earlier or later courses are ignored. An empty active set is Neither.
// A course below 1 or a nil item is a data-integrity error.
//
// Classify is pure: calling it twice on the same input yields the same result.
func Classify(items []*LineItem, part Course) (Readiness, error) {
	if err := part.Validate(); err != nil {
		return Neither, err
	}

	var active, ready int
	for i, li := range items {
		if li == nil {
			return Neither, errs.NewValueIsRequiredErrorWithCause("line item", fmt.Errorf("entry %d is nil", i))
		}
		if li.part != part {
			continue
		}
		active++
		if li.ready {
			ready++
		}
	}

	switch {
	case active == 0 || ready == 0:
		return Neither, nil
	case ready == active:
		return Ready, nil
	default:
		return Pending, nil
	}
}
