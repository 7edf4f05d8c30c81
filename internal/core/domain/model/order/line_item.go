package order

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
	// NewLineItem or RestoreLineItem.
	ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError("LineItem must be created via NewLineItem")
)

// LineItem is a single dish ordered as part of an Order.
//
// LineItem follows these invariants:
//   - id and menuItemID are valid sequence ids
//   - part is fixed when the item is created and never changes afterwards
//   - price is the menu price captured when the item was ordered
//   - modifications keep the order in which the guest asked for them
//
// Only the readiness flag is mutable; everything else is a snapshot.
type LineItem struct {
	// id is minted from the "line-item" counter
	id kernel.SequenceID

	// menuItemID references the restaurant's menu item
	menuItemID kernel.SequenceID

	// note is free text from the guest, e.g. "well done"
	note string

	// mods is the ordered modification list
	mods Modifications

	// ready is toggled by the kitchen
	ready bool

	// part is the course the item belongs to
	part Course

	// price is the menu price at submission time
	price kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a not-yet-ready line item for the given course.
//
// Parameters:
//   - id: identifier minted from the "line-item" counter
//   - menuItemID: the menu item being ordered
//   - price: menu price snapshot
//   - note: free text, surrounding whitespace is trimmed
//   - mods: ordered modification list (copied)
//   - part: the order's current course
//
// Example:
//
//	onion, _ := order.NewModification(order.ModRemove, "onion")
//	li, err := order.NewLineItem(41, 7, 1250, "well done", []order.Modification{onion}, order.FirstCourse)
func NewLineItem(
	id, menuItemID kernel.SequenceID,
	price kernel.Money,
	note string,
	mods []Modification,
	part Course,
) (*LineItem, error) {
	return RestoreLineItem(id, menuItemID, price, note, mods, false, part)
}

// RestoreLineItem rebuilds a line item from persisted state, including its readiness flag.
// It applies the same validation as NewLineItem so corrupt rows surface as errors.
func RestoreLineItem(
	id, menuItemID kernel.SequenceID,
	price kernel.Money,
	note string,
	mods []Modification,
	ready bool,
	part Course,
) (*LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		validatePrice(price),
		part.Validate(),
		validateMods(mods),
	); err != nil {
		return nil, err
	}

	return &LineItem{
		id:         id,
		menuItemID: menuItemID,
		note:       strings.TrimSpace(note),
		mods:       Modifications(mods).clone(),
		ready:      ready,
		part:       part,
		price:      price,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate reports ErrLineItemIsNotConstructed for nil or zero-value items.
func (li *LineItem) Validate() error {
	if li == nil {
		return ErrLineItemIsNotConstructed
	}
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

func (li *LineItem) ID() kernel.SequenceID {
	return li.id
}

func (li *LineItem) MenuItemID() kernel.SequenceID {
	return li.menuItemID
}

func (li *LineItem) Note() string {
	return li.note
}

// Mods returns a copy of the modification list.
func (li *LineItem) Mods() Modifications {
	return li.mods.clone()
}

func (li *LineItem) IsReady() bool {
	return li.ready
}

func (li *LineItem) Part() Course {
	return li.part
}

func (li *LineItem) Price() kernel.Money {
	return li.price
}

// ToggleReady flips the readiness flag and returns the value it had before.
func (li *LineItem) ToggleReady() bool {
	previous := li.ready
	li.ready = !previous
	return previous
}

// sameAs compares every field, used to detect patches that change nothing.
func (li *LineItem) sameAs(other *LineItem) bool {
	return li.id == other.id &&
		li.menuItemID == other.menuItemID &&
		li.note == other.note &&
		li.mods.SameSequence(other.mods) &&
		li.ready == other.ready &&
		li.part == other.part &&
		li.price == other.price
}

func validatePrice(price kernel.Money) error {
	_, err := kernel.NewMoney(price.Cents())
	return err
}

func validateMods(mods []Modification) error {
	for _, m := range mods {
		if _, err := NewModification(m.operation, m.ingredient); err != nil {
			return err
		}
	}
	return nil
}
