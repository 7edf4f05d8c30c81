package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Channel is the sales channel an order was placed through.
type Channel string

const (
	DineIn  Channel = "dine-in"
	Takeout Channel = "takeout"
)

// ParseChannel converts the wire representation into a Channel.
func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Validate accepts only DineIn and Takeout.
func (c Channel) Validate() error {
	switch c {
	case DineIn, Takeout:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%q is not a valid channel", string(c)))
	}
}

func (c Channel) String() string {
	return string(c)
}
