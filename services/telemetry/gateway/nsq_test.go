package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/circuitbreaker"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

type fakePublisher struct {
	topic   string
	message interface{}
	err     error
	calls   int
}

func (p *fakePublisher) Publish(topic string, message interface{}) error {
	p.calls++
	p.topic = topic
	p.message = message
	return p.err
}

func TestPublishTelemetry(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewTelemetryGW(publisher, nil)

	event := &models.TelemetryEvent{
		RouteID:   "route-1",
		Latitude:  40.4168,
		Longitude: -3.7038,
		SpeedKmh:  42,
		Timestamp: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	err := gw.PublishTelemetry(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, "route.telemetry", publisher.topic)
	assert.Equal(t, event, publisher.message)
}

func TestPublishTelemetry_Error(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nsqd unreachable")}
	gw := NewTelemetryGW(publisher, nil)

	err := gw.PublishTelemetry(context.Background(), &models.TelemetryEvent{RouteID: "route-1"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "route-1")
}

func TestPublishTelemetry_CanceledContext(t *testing.T) {
	publisher := &fakePublisher{}
	gw := NewTelemetryGW(publisher, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gw.PublishTelemetry(ctx, &models.TelemetryEvent{RouteID: "route-1"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, publisher.topic)
}

func TestPublishTelemetry_BreakerOpens(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("nsqd unreachable")}
	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "nsq", FailureThreshold: 2, Timeout: time.Minute})
	gw := NewTelemetryGW(publisher, breaker)
	event := &models.TelemetryEvent{RouteID: "route-1"}

	assert.Error(t, gw.PublishTelemetry(context.Background(), event))
	assert.Error(t, gw.PublishTelemetry(context.Background(), event))

	err := gw.PublishTelemetry(context.Background(), event)

	assert.ErrorIs(t, err, circuitbreaker.ErrOpen)
	assert.Equal(t, 2, publisher.calls)
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())
}
