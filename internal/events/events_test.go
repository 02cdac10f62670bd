package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/kafka"
	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/internal/events"
)

func newPublisher(t *testing.T, enable bool) (events.Publisher, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = enable
	cfg.Kafka.Topic = "hotelier.bookings"

	return events.New(cfg, mockKafka), mockKafka
}

func TestPublisher_Disabled(t *testing.T) {
	publisher, _ := newPublisher(t, false)

	// No SendMessages expectation; the controller fails on any call.
	publisher.Publish(context.Background(), events.TypeBookingCreated, "b-1", map[string]any{"id": "b-1"})
}

func TestPublisher_Enabled(t *testing.T) {
	publisher, mockKafka := newPublisher(t, true)

	var sent kafka.Message

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "hotelier.bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			sent = messages[0]

			return nil
		})

	publisher.Publish(context.Background(), events.TypeBookingCreated, "b-1", map[string]any{"id": "b-1"})

	assert.Equal(t, "b-1", sent.Key)

	event, ok := sent.Value.(events.Event)
	assert.True(t, ok)
	assert.Equal(t, events.TypeBookingCreated, event.Type)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestPublisher_SendErrorIsSwallowed(t *testing.T) {
	publisher, mockKafka := newPublisher(t, true)

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "hotelier.bookings", gomock.Any()).
		Return(errors.New("broker unreachable"))

	assert.NotPanics(t, func() {
		publisher.Publish(context.Background(), events.TypeBookingStatusChanged, "b-1", nil)
	})
}
