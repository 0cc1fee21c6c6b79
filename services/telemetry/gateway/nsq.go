package gateway

import (
	"context"
	"fmt"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/circuitbreaker"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/constants"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
)

// Publisher publishes JSON messages to a topic
type Publisher interface {
	Publish(topic string, message interface{}) error
}

type telemetryGW struct {
	publisher Publisher
	breaker   *circuitbreaker.CircuitBreaker
}

// NewTelemetryGW creates a new telemetry gateway. Publishing goes through
// breaker when one is given.
func NewTelemetryGW(publisher Publisher, breaker *circuitbreaker.CircuitBreaker) telemetry.TelemetryGW {
	return &telemetryGW{
		publisher: publisher,
		breaker:   breaker,
	}
}

// PublishTelemetry publishes the derived telemetry of an accepted fix to NSQ
func (g *telemetryGW) PublishTelemetry(ctx context.Context, event *models.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	publish := func(context.Context) error {
		return g.publisher.Publish(constants.TopicRouteTelemetry, event)
	}

	var err error
	if g.breaker != nil {
		err = g.breaker.Execute(ctx, publish)
	} else {
		err = publish(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to publish telemetry for route %s: %w", event.RouteID, err)
	}
	return nil
}
