package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/constants"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	nsqpkg "github.com/ecofleet/fleet-telemetry/internal/pkg/nsq"
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
)

const handleTimeout = 10 * time.Second

// FixHandler consumes GPS fixes published on the route.fix topic
type FixHandler struct {
	telemetryUC telemetry.TelemetryUC
	consumer    *nsqpkg.Consumer
}

// NewFixHandler creates a new NSQ fix handler
func NewFixHandler(telemetryUC telemetry.TelemetryUC) *FixHandler {
	return &FixHandler{
		telemetryUC: telemetryUC,
	}
}

// InitNSQConsumer subscribes the handler to the fix topic and connects it
func (h *FixHandler) InitNSQConsumer(config models.NSQConfig) error {
	logger.Info("Initializing NSQ consumer for telemetry service",
		logger.String("topic", constants.TopicRouteFix),
		logger.String("channel", config.Channel))

	consumer, err := nsqpkg.NewConsumer(constants.TopicRouteFix, config.Channel, h.HandleFix)
	if err != nil {
		return err
	}

	if len(config.LookupdAddress) > 0 {
		err = consumer.ConnectToLookupd(config.LookupdAddress)
	} else {
		err = consumer.ConnectToNSQD(config.Address)
	}
	if err != nil {
		consumer.Stop()
		return fmt.Errorf("failed to connect fix consumer: %w", err)
	}

	h.consumer = consumer
	return nil
}

// HandleFix applies one fix message. Messages that can never succeed are
// dropped; store failures are returned so NSQ requeues them.
func (h *FixHandler) HandleFix(body []byte) error {
	var msg models.FixMessage
	if err := nsqpkg.UnmarshalMessage(body, &msg); err != nil {
		logger.Warn("Dropping malformed fix message", logger.Err(err))
		return nil
	}
	if msg.RouteID == "" {
		logger.Warn("Dropping fix message without route id")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	_, err := h.telemetryUC.ApplyFix(ctx, msg.RouteID, models.Fix{
		Latitude:  msg.Latitude,
		Longitude: msg.Longitude,
		Source:    models.FixSourceNSQ,
	})
	switch {
	case err == nil:
		logger.Debug("Applied fix from NSQ", logger.String("route_id", msg.RouteID))
		return nil
	case errors.Is(err, models.ErrRouteNotFound), errors.Is(err, models.ErrInvalidFix):
		logger.Warn("Dropping fix message",
			logger.String("route_id", msg.RouteID),
			logger.Err(err))
		return nil
	default:
		return fmt.Errorf("failed to apply fix for route %s: %w", msg.RouteID, err)
	}
}

// Stop stops the consumer if it was started
func (h *FixHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
