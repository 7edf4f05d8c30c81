package order

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventType names a kitchen event. The value doubles as the message routing key.
type EventType string

const (
	EventOrderCreated         EventType = "order.created"
	EventOrderUpdated         EventType = "order.updated"
	EventOrderDeleted         EventType = "order.deleted"
	EventOrderServed          EventType = "order.served"
	EventOrderCourseAdvanced  EventType = "order.course_advanced"
	EventOrderLineItemsAdded  EventType = "order.line_items_added"
	EventOrderLineItemRemoved EventType = "order.line_item_removed"
	EventLineItemReadyToggled EventType = "line_item.ready_toggled"
)

// Event is emitted after an order mutation has been committed.
// Fields that do not apply to a given type are left zero.
type Event struct {
	ID           uuid.UUID
	Type         EventType
	RestaurantID kernel.RestaurantID
	OrderID      kernel.SequenceID
	LineItemIDs  []kernel.SequenceID
	Part         Course
	Ready        *bool
	OccurredAt   time.Time
}

// NewEvent stamps a new event with a random id and the current time.
func NewEvent(t EventType, restaurantID kernel.RestaurantID, orderID kernel.SequenceID) Event {
	return Event{
		ID:           uuid.New(),
		Type:         t,
		RestaurantID: restaurantID,
		OrderID:      orderID,
		OccurredAt:   time.Now().UTC(),
	}
}

// WithPart sets the course the event refers to.
func (e Event) WithPart(part Course) Event {
	e.Part = part
	return e
}

// WithLineItems records the affected line items.
func (e Event) WithLineItems(ids ...kernel.SequenceID) Event {
	e.LineItemIDs = append([]kernel.SequenceID(nil), ids...)
	return e
}

// WithReady records the readiness flag after a toggle.
func (e Event) WithReady(ready bool) Event {
	e.Ready = &ready
	return e
}
