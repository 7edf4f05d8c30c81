package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher implements ports.EventPublisher on one AMQP channel in confirm mode.
// Publish calls are serialized; each waits for the broker's ack.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	mu       sync.Mutex
}

// Dial connects to url, declares exchange as a durable topic exchange and puts the
// channel in confirm mode.
func Dial(url, exchange string) (*Publisher, error) {
	if exchange == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish sends every event and waits for each confirmation. Failures of single
// events do not stop the rest; they are joined into the returned error.
func (p *Publisher) Publish(ctx context.Context, events ...order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var result error
	for _, e := range events {
		if err := p.publishOne(ctx, e); err != nil {
			result = errors.Join(result, err)
		}
	}
	return result
}

func (p *Publisher) publishOne(ctx context.Context, e order.Event) error {
	msg, err := NewMessage(e)
	if err != nil {
		return err
	}

	confirm, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, p.exchange, RoutingKey(e), false, false, msg)
	if err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("confirm %s: %w", e.Type, err)
	}
	if !acked {
		return fmt.Errorf("publish %s: broker returned nack", e.Type)
	}
	return nil
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping() error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var result error
	if p.ch != nil {
		result = errors.Join(result, p.ch.Close())
	}
	if p.conn != nil {
		result = errors.Join(result, p.conn.Close())
	}
	return result
}
