package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("Order must be created via NewOrder constructor")

	// ErrOrderIsServed is returned by operations that are not allowed once an order is served.
	ErrOrderIsServed = errs.NewValueIsInvalidErrorWithCause("served", errors.New("order is already served"))
)

// Order is a restaurant order. It is the aggregate root that owns the line items
// and tracks which course ("part") the kitchen is currently preparing.
//
// Order follows these invariants:
//   - id is minted from the "order" counter and belongs to exactly one restaurant
//   - part starts at FirstCourse and never decreases
//   - every line item keeps the part it was added in
//   - served is terminal: once true it never becomes false
//   - total is the sum of the line items' price snapshots
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.SequenceID

	// restaurantID scopes the order to its owner
	restaurantID kernel.RestaurantID

	// channel is dine-in or takeout
	channel Channel

	// number is the display number shown to guests and cooks
	number int

	// tableID is set for orders tied to a table
	tableID *kernel.SequenceID

	// createdAt drives the time ordering of every view
	createdAt time.Time

	// part is the course currently being prepared
	part Course

	// served marks the order as handed over
	served bool

	// total is the denormalized sum of price snapshots
	total kernel.Money

	// lineItems keeps submission order
	lineItems []*LineItem

	guard guard.ConstructorGuard
}

// NewOrder creates an empty order in FirstCourse, not served, with a zero total.
// Line items are added with AddLineItem.
//
// Parameters:
//   - id: identifier minted from the "order" counter
//   - restaurantID: owning restaurant
//   - channel: DineIn or Takeout
//   - number: display number, zero or positive
//   - tableID: optional table the order is placed at
//   - createdAt: creation timestamp
//
// Example:
//
//	o, err := order.NewOrder(12, restaurantID, order.DineIn, 4, nil, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	_, err = o.AddLineItem(41, 7, 1250, "", nil)
func NewOrder(
	id kernel.SequenceID,
	restaurantID kernel.RestaurantID,
	channel Channel,
	number int,
	tableID *kernel.SequenceID,
	createdAt time.Time,
) (*Order, error) {
	return RestoreOrder(id, restaurantID, channel, number, tableID, createdAt, FirstCourse, false, 0, nil)
}

// RestoreOrder rebuilds an order from persisted state. The stored total is kept as is.
//
// Returns an error when any field is malformed; a persisted part below 1 or a nil
// line item is a data-integrity failure.
func RestoreOrder(
	id kernel.SequenceID,
	restaurantID kernel.RestaurantID,
	channel Channel,
	number int,
	tableID *kernel.SequenceID,
	createdAt time.Time,
	part Course,
	served bool,
	total kernel.Money,
	lineItems []*LineItem,
) (*Order, error) {
	o := &Order{
		served: served,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setHeader(channel, number, tableID),
		o.setCreatedAt(createdAt),
		o.setPart(part),
		o.setTotal(total),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for nil or zero-value orders
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.SequenceID {
	return o.id
}

// RestaurantID returns the owning restaurant.
func (o *Order) RestaurantID() kernel.RestaurantID {
	return o.restaurantID
}

func (o *Order) Channel() Channel {
	return o.channel
}

func (o *Order) Number() int {
	return o.number
}

// TableID returns the table the order is placed at, or nil.
func (o *Order) TableID() *kernel.SequenceID {
	if o.tableID == nil {
		return nil
	}
	id := *o.tableID
	return &id
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Part returns the course currently being prepared.
func (o *Order) Part() Course {
	return o.part
}

func (o *Order) IsServed() bool {
	return o.served
}

func (o *Order) Total() kernel.Money {
	return o.total
}

// LineItems returns the line items in submission order. The slice is a copy;
// the items themselves are shared with the aggregate.
func (o *Order) LineItems() []*LineItem {
	out := make([]*LineItem, len(o.lineItems))
	copy(out, o.lineItems)
	return out
}

// LineItem looks up a line item by id.
func (o *Order) LineItem(id kernel.SequenceID) (*LineItem, bool) {
	for _, li := range o.lineItems {
		if li.id == id {
			return li, true
		}
	}
	return nil, false
}

// ActiveLineItems returns the line items belonging to the current course.
func (o *Order) ActiveLineItems() []*LineItem {
	var active []*LineItem
	for _, li := range o.lineItems {
		if li.part == o.part {
			active = append(active, li)
		}
	}
	return active
}

// Readiness classifies the order over its current course.
func (o *Order) Readiness() (Readiness, error) {
	return Classify(o.lineItems, o.part)
}

// AddLineItem appends a new line item in the order's current course and adds its
// price snapshot to the total.
//
// This method enforces the following business rules:
//   - The order must not be served
//   - The line item id must not already be used in this order
//
// Returns the created line item.
func (o *Order) AddLineItem(
	id, menuItemID kernel.SequenceID,
	price kernel.Money,
	note string,
	mods []Modification,
) (*LineItem, error) {
	if o.served {
		return nil, ErrOrderIsServed
	}
	if _, exists := o.LineItem(id); exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("line item", fmt.Errorf("id %d is already used", id))
	}

	li, err := NewLineItem(id, menuItemID, price, note, mods, o.part)
	if err != nil {
		return nil, err
	}

	o.lineItems = append(o.lineItems, li)
	o.total = o.total.Add(li.price)
	return li, nil
}

// RemoveLineItem drops a line item and subtracts its price snapshot from the total.
//
// Returns ObjectNotFoundError when the order has no such line item.
func (o *Order) RemoveLineItem(id kernel.SequenceID) error {
	for i, li := range o.lineItems {
		if li.id == id {
			o.lineItems = append(o.lineItems[:i], o.lineItems[i+1:]...)
			o.total -= li.price
			return nil
		}
	}
	return errs.NewObjectNotFoundError("line item", id.Int64())
}

// ToggleLineItemReady flips a line item's readiness and returns the previous value.
func (o *Order) ToggleLineItemReady(id kernel.SequenceID) (bool, error) {
	li, ok := o.LineItem(id)
	if !ok {
		return false, errs.NewObjectNotFoundError("line item", id.Int64())
	}
	return li.ToggleReady(), nil
}

// Advance moves the order to the next course. Line items keep their part, so
// items of earlier courses drop out of the readiness computation.
//
// There is no readiness precondition: staff may advance whenever they choose.
func (o *Order) Advance() {
	o.part = o.part.Next()
}

// Serve marks the order as served and reports whether anything changed.
func (o *Order) Serve() bool {
	if o.served {
		return false
	}
	o.served = true
	return true
}

// Patch is a full replacement of an order's mutable state.
type Patch struct {
	Channel   Channel
	Number    int
	TableID   *kernel.SequenceID
	Part      Course
	Served    bool
	// CreatedAt replaces the order date when set.
	CreatedAt *time.Time
	LineItems []PatchLineItem
}

// PatchLineItem describes one line item of a Patch. ID is either an existing
// line item of the order or a freshly allocated one.
type PatchLineItem struct {
	ID         kernel.SequenceID
	MenuItemID kernel.SequenceID
	Price      kernel.Money
	Note       string
	Mods       []Modification
	Ready      bool
}

// Apply replaces the order's mutable state with p and reports whether anything changed.
//
// This method enforces the following business rules:
//   - p.Part must not be lower than the current part
//   - a served order cannot be reset to unserved
//   - the creation date is replaced only when p.CreatedAt is set
//   - line items already in the order keep their original part
//   - line items new to the order get p.Part
//   - the total is recomputed from the resulting line items
//
// On error the order is left untouched.
func (o *Order) Apply(p Patch) (bool, error) {
	if err := p.Part.Validate(); err != nil {
		return false, err
	}
	if p.Part < o.part {
		return false, errs.NewValueIsInvalidErrorWithCause("part",
			fmt.Errorf("cannot move back from %d to %d", o.part, p.Part))
	}
	if o.served && !p.Served {
		return false, errs.NewValueIsInvalidErrorWithCause("served", errors.New("served order cannot be reopened"))
	}

	next := &Order{
		id:           o.id,
		restaurantID: o.restaurantID,
		createdAt:    o.createdAt,
		part:         p.Part,
		served:       p.Served,
		guard:        o.guard,
	}
	if err := next.setHeader(p.Channel, p.Number, p.TableID); err != nil {
		return false, err
	}
	if p.CreatedAt != nil {
		if err := next.setCreatedAt(*p.CreatedAt); err != nil {
			return false, err
		}
	}

	items := make([]*LineItem, 0, len(p.LineItems))
	seen := make(map[kernel.SequenceID]struct{}, len(p.LineItems))
	for _, pli := range p.LineItems {
		if _, dup := seen[pli.ID]; dup {
			return false, errs.NewValueIsInvalidErrorWithCause("line item", fmt.Errorf("id %d appears twice", pli.ID))
		}
		seen[pli.ID] = struct{}{}

		part := p.Part
		if existing, ok := o.LineItem(pli.ID); ok {
			part = existing.part
		}
		li, err := RestoreLineItem(pli.ID, pli.MenuItemID, pli.Price, pli.Note, pli.Mods, pli.Ready, part)
		if err != nil {
			return false, err
		}
		items = append(items, li)
	}
	next.lineItems = items
	next.total = sumPrices(items)

	if o.sameAs(next) {
		return false, nil
	}
	*o = *next
	return true, nil
}

func (o *Order) sameAs(other *Order) bool {
	if o.channel != other.channel ||
		o.number != other.number ||
		!sameTable(o.tableID, other.tableID) ||
		o.part != other.part ||
		o.served != other.served ||
		!o.createdAt.Equal(other.createdAt) ||
		o.total != other.total ||
		len(o.lineItems) != len(other.lineItems) {
		return false
	}
	for i := range o.lineItems {
		if !o.lineItems[i].sameAs(other.lineItems[i]) {
			return false
		}
	}
	return true
}

func sameTable(a, b *kernel.SequenceID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sumPrices(items []*LineItem) kernel.Money {
	var total kernel.Money
	for _, li := range items {
		total = total.Add(li.price)
	}
	return total
}

func (o *Order) setID(id kernel.SequenceID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

// setHeader validates channel, display number and table.
func (o *Order) setHeader(channel Channel, number int, tableID *kernel.SequenceID) error {
	if err := channel.Validate(); err != nil {
		return err
	}
	if number < 0 {
		return errs.NewValueIsOutOfRangeError("number", number, 0, math.MaxInt32)
	}
	if tableID != nil {
		if err := tableID.Validate(); err != nil {
			return err
		}
		id := *tableID
		tableID = &id
	}
	o.channel = channel
	o.number = number
	o.tableID = tableID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setPart(part Course) error {
	if err := part.Validate(); err != nil {
		return err
	}
	o.part = part
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := validatePrice(total); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("total", err)
	}
	o.total = total
	return nil
}

func (o *Order) setLineItems(items []*LineItem) error {
	for _, li := range items {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = append([]*LineItem(nil), items...)
	return nil
}
