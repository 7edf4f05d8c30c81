package commands

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"
)

// ErrLineItemsAreRequired is returned when an order would be submitted without any dish.
var ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")

// LineItemInput is a dish submitted with a new order or added to an existing one.
type LineItemInput struct {
	MenuItemID kernel.SequenceID
	Note       string
	Mods       []order.Modification
}

func (in LineItemInput) validate() error {
	if err := in.MenuItemID.Validate(); err != nil {
		return err
	}
	for _, m := range in.Mods {
		if _, err := order.NewModification(m.Operation(), m.Ingredient()); err != nil {
			return err
		}
	}
	return nil
}

// PatchLineItemInput is a line item of a full order update. A nil ID marks a
// line item that is new to the order.
type PatchLineItemInput struct {
	ID         *kernel.SequenceID
	MenuItemID kernel.SequenceID
	Note       string
	Mods       []order.Modification
	Ready      bool
}

func (in PatchLineItemInput) validate() error {
	var idErr error
	if in.ID != nil {
		idErr = in.ID.Validate()
	}
	return errors.Join(idErr, LineItemInput{MenuItemID: in.MenuItemID, Mods: in.Mods}.validate())
}

func validateLineItems(lines []LineItemInput) error {
	if len(lines) == 0 {
		return ErrLineItemsAreRequired
	}
	for _, l := range lines {
		if err := l.validate(); err != nil {
			return err
		}
	}
	return nil
}

func cloneLineItems(lines []LineItemInput) []LineItemInput {
	out := make([]LineItemInput, len(lines))
	for i, l := range lines {
		l.Note = strings.TrimSpace(l.Note)
		l.Mods = append([]order.Modification(nil), l.Mods...)
		out[i] = l
	}
	return out
}
