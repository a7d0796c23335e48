package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cinema-screening/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingPublisher emits booking events. Callers treat failures as non-fatal.
type BookingPublisher interface {
	PublishBookingCreated(ctx context.Context, event BookingEvent) error
	PublishBookingDeleted(ctx context.Context, event BookingEvent) error
	Close() error
}

type amqpPublisher struct {
	url string
	log *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewBookingPublisher dials the broker and declares the booking queues. An
// empty URL or a failed dial yields a publisher that drops every event.
func NewBookingPublisher(cfg utils.AMQPConfig, log *zap.Logger) BookingPublisher {
	log = log.With(zap.String("component", "booking_publisher"))

	if cfg.URL == "" {
		log.Info("AMQP URL not configured, booking events disabled")
		return NewNoopPublisher()
	}

	p := &amqpPublisher{url: cfg.URL, log: log}
	if err := p.connect(); err != nil {
		log.Warn("RabbitMQ unreachable, booking events disabled", zap.Error(err))
		return NewNoopPublisher()
	}

	log.Info("Booking publisher connected")
	return p
}

// connect must be called with mu held or before the publisher is shared.
func (p *amqpPublisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	for _, name := range []string{BookingCreatedQueue, BookingDeletedQueue} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			return fmt.Errorf("declare queue %s: %w", name, err)
		}
	}

	p.ch = ch
	return nil
}

func (p *amqpPublisher) PublishBookingCreated(ctx context.Context, event BookingEvent) error {
	return p.publish(ctx, BookingCreatedQueue, event)
}

func (p *amqpPublisher) PublishBookingDeleted(ctx context.Context, event BookingEvent) error {
	return p.publish(ctx, BookingDeletedQueue, event)
}

func (p *amqpPublisher) publish(ctx context.Context, queueName string, event BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", queueName, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			p.log.Warn("Reconnect failed", zap.Error(err), zap.String("queue", queueName))
			return err
		}
	}

	err = p.ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		p.log.Warn("Publish failed",
			zap.Error(err),
			zap.String("queue", queueName),
			zap.String("booking_id", event.BookingID),
		)
		return fmt.Errorf("publish %s: %w", queueName, err)
	}

	p.log.Debug("Event published",
		zap.String("queue", queueName),
		zap.String("booking_id", event.BookingID),
	)
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn.Close()
	}
	return nil
}

type noopPublisher struct{}

func NewNoopPublisher() BookingPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishBookingCreated(context.Context, BookingEvent) error { return nil }
func (noopPublisher) PublishBookingDeleted(context.Context, BookingEvent) error { return nil }
func (noopPublisher) Close() error                                              { return nil }
