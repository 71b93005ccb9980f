package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hendrikderyck/steven-car-company/internal/constants"
	"github.com/hendrikderyck/steven-car-company/internal/core/domain"
	"github.com/hendrikderyck/steven-car-company/internal/core/port"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ProcessedListingEnqueueAdapter publishes scraped listings to RabbitMQ so
// other services (price watchers, feeds) can consume them. The whole adapter
// is optional: when RabbitMQ is disabled the pipeline uses a noop queue.
type ProcessedListingEnqueueAdapter struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ port.ProcessedListingQueuePort = (*ProcessedListingEnqueueAdapter)(nil)

// NewProcessedListingEnqueueAdapter connects, opens a channel and declares
// the exchange.
func NewProcessedListingEnqueueAdapter(amqpURL string) (*ProcessedListingEnqueueAdapter, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		constants.ExchangeName,
		constants.ExchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring exchange %q: %w", constants.ExchangeName, err)
	}

	return &ProcessedListingEnqueueAdapter{conn: conn, channel: channel}, nil
}

func (a *ProcessedListingEnqueueAdapter) EnqueueListing(ctx context.Context, record *domain.ListingRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling listing record: %w", err)
	}

	err = a.channel.PublishWithContext(ctx,
		constants.ExchangeName,
		constants.RoutingKeyProcessedListings,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing listing record: %w", err)
	}
	return nil
}

func (a *ProcessedListingEnqueueAdapter) Close() error {
	if a.channel != nil {
		a.channel.Close()
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}

// NoopQueueAdapter satisfies the queue port when publishing is disabled.
type NoopQueueAdapter struct{}

func (NoopQueueAdapter) EnqueueListing(ctx context.Context, record *domain.ListingRecord) error {
	return nil
}

func (NoopQueueAdapter) Close() error { return nil }
