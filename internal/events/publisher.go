// Package events publishes waitlist lifecycle events to a topic exchange
// for the external notifier. Delivering notifications to end users is not
// this service's job; the event on the wire is the boundary.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
	"github.com/wilbyang/reserver/internal/domain"
)

const (
	keyWaitlistPromoted = "waitlist.promoted"
	keyWaitlistExpired  = "waitlist.expired"
)

type waitlistEvent struct {
	EntryID        string    `json:"entry_id"`
	ResourceID     string    `json:"resource_id"`
	OwnerID        string    `json:"owner_id"`
	PreferredStart time.Time `json:"preferred_start"`
	PreferredEnd   time.Time `json:"preferred_end"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   logger.Logger
}

// NewPublisher connects to the broker and declares the topic exchange.
// An empty URL disables publishing; events are then only logged.
func NewPublisher(url, exchange string, log logger.Logger) (*Publisher, error) {
	if url == "" {
		log.Warn("event broker url is empty, event publishing disabled")
		return &Publisher{exchange: exchange, logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange, logger: log}, nil
}

func (p *Publisher) PublishWaitlistPromoted(ctx context.Context, e *domain.WaitlistEntry) error {
	return p.publish(ctx, keyWaitlistPromoted, e)
}

func (p *Publisher) PublishWaitlistExpired(ctx context.Context, e *domain.WaitlistEntry) error {
	return p.publish(ctx, keyWaitlistExpired, e)
}

func (p *Publisher) publish(ctx context.Context, key string, e *domain.WaitlistEntry) error {
	event := waitlistEvent{
		EntryID:        e.ID,
		ResourceID:     e.ResourceID,
		OwnerID:        e.OwnerID,
		PreferredStart: e.Preferred.Start,
		PreferredEnd:   e.Preferred.End,
		Status:         string(e.Status),
		OccurredAt:     time.Now().UTC(),
	}

	if p.ch == nil {
		p.logger.Debug("event publishing disabled, dropping event",
			logger.String("key", key),
			logger.String("entry_id", e.ID),
		)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
