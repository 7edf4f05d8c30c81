package cmd

import (
	"log/slog"

	"kitchen/internal/adapters/out/eventlog"
	"kitchen/internal/adapters/out/rabbitmq"
	"kitchen/internal/core/ports"
)

// NewEventPublisher connects to RabbitMQ when a broker URL is configured and
// otherwise writes events to the structured log.
func NewEventPublisher(cfg Config, logger *slog.Logger) (ports.EventPublisher, error) {
	if cfg.RabbitMQURL == "" {
		logger.Info("No RabbitMQ URL configured, kitchen events go to the log")
		return eventlog.NewPublisher(logger), nil
	}

	publisher, err := rabbitmq.Dial(cfg.RabbitMQURL, cfg.RabbitMQExchange)
	if err != nil {
		return nil, err
	}
	logger.Info("Publishing kitchen events to RabbitMQ", "exchange", cfg.RabbitMQExchange)
	return publisher, nil
}
