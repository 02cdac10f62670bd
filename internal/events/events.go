package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated       = "booking.created"
	TypeBookingStatusChanged = "booking.status_changed"
	TypeLoungeBookingCreated = "lounge_booking.created"
)

type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// Publisher emits domain events to the configured topic. Publishing is
// best-effort; failures are logged and never surfaced to callers.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload any)
}

type publisherImpl struct {
	cfg   *config.Config
	kafka kafka.Client
}

func New(cfg *config.Config, kafkaClient kafka.Client) Publisher {
	return &publisherImpl{
		cfg:   cfg,
		kafka: kafkaClient,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType, key string, payload any) {
	if !p.cfg.Kafka.Enable {
		return
	}

	event := Event{
		Type:       eventType,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}

	err := p.kafka.SendMessages(ctx, p.cfg.Kafka.Topic, kafka.Message{
		Key:   key,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("eventType", eventType).Msg("failed to publish event")
	}
}
