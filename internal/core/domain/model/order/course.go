package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Course is a preparation round of an order, stored as "part".
// Orders start at FirstCourse and only move forward.
type Course int

// FirstCourse is the course every new order starts in.
const FirstCourse Course = 1

// Validate rejects courses below FirstCourse; such values only come from corrupt data.
func (c Course) Validate() error {
	if c < FirstCourse {
		return errs.NewValueIsInvalidErrorWithCause("part", fmt.Errorf("%d is less than %d", c, FirstCourse))
	}
	return nil
}

// Next returns the following course.
func (c Course) Next() Course {
	return c + 1
}

func (c Course) Int() int {
	return int(c)
}
