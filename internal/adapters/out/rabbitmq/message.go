// Package rabbitmq publishes kitchen events to a RabbitMQ topic exchange.
//
// Routing keys have the form "kitchen.<restaurant id>.<event type>", for example
// "kitchen.4b7c…e2.order.served", so consumers can bind per restaurant
// ("kitchen.<id>.#") or per event type ("kitchen.*.order.served").
package rabbitmq

import (
	"encoding/json"
	"fmt"

	"kitchen/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "kitchen"

// eventMessage is the JSON body of a published event.
type eventMessage struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	RestaurantID string  `json:"restaurantId"`
	OrderID      int64   `json:"orderId"`
	LineItemIDs  []int64 `json:"lineItemIds,omitempty"`
	Part         int     `json:"part,omitempty"`
	Ready        *bool   `json:"ready,omitempty"`
	OccurredAt   string  `json:"occurredAt"`
}

// RoutingKey returns the topic routing key for e.
func RoutingKey(e order.Event) string {
	return fmt.Sprintf("%s.%s.%s", routingKeyPrefix, e.RestaurantID, e.Type)
}

// NewMessage encodes e as a persistent JSON message.
func NewMessage(e order.Event) (amqp.Publishing, error) {
	msg := eventMessage{
		ID:           e.ID.String(),
		Type:         string(e.Type),
		RestaurantID: e.RestaurantID.String(),
		OrderID:      e.OrderID.Int64(),
		Part:         e.Part.Int(),
		Ready:        e.Ready,
		OccurredAt:   e.OccurredAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
	}
	for _, id := range e.LineItemIDs {
		msg.LineItemIDs = append(msg.LineItemIDs, id.Int64())
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("encode %s event: %w", e.Type, err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    msg.ID,
		Type:         msg.Type,
		Timestamp:    e.OccurredAt,
		Headers: amqp.Table{
			"restaurant_id": msg.RestaurantID,
			"order_id":      msg.OrderID,
		},
		Body: body,
	}, nil
}
