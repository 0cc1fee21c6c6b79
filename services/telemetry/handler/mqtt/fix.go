package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/constants"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	mqttpkg "github.com/ecofleet/fleet-telemetry/internal/pkg/mqtt"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
)

const handleTimeout = 10 * time.Second

var errInvalidTopic = errors.New("topic does not match ecofleet/routes/{id}/fix")

// Subscriber registers topic handlers on a broker connection
type Subscriber interface {
	Subscribe(topic string, handler mqttpkg.MessageHandler) error
}

// devicePayload is the JSON body published by trackers
type devicePayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// FixHandler applies fixes published by devices over MQTT.
// Payloads are either JSON or a raw NMEA RMC/GGA sentence.
type FixHandler struct {
	telemetryUC telemetry.TelemetryUC
}

// NewFixHandler creates a new MQTT fix handler
func NewFixHandler(telemetryUC telemetry.TelemetryUC) *FixHandler {
	return &FixHandler{telemetryUC: telemetryUC}
}

// Subscribe attaches the handler to the device fix topic
func (h *FixHandler) Subscribe(sub Subscriber) error {
	return sub.Subscribe(constants.MQTTTopicRouteFix, h.HandleFix)
}

// HandleFix decodes and applies a single device message. MQTT has no
// redelivery at this layer, so every failure is logged and dropped.
func (h *FixHandler) HandleFix(topic string, payload []byte) {
	routeID, err := routeIDFromTopic(topic)
	if err != nil {
		logger.Warn("Ignoring MQTT message", logger.String("topic", topic), logger.Err(err))
		return
	}

	fix, err := decodeFix(payload)
	if err != nil {
		logger.Warn("Dropping undecodable device fix",
			logger.String("route_id", routeID),
			logger.Err(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if _, err := h.telemetryUC.ApplyFix(ctx, routeID, fix); err != nil {
		logger.Warn("Failed to apply device fix",
			logger.String("route_id", routeID),
			logger.String("source", fix.Source),
			logger.Err(err))
		return
	}

	logger.Debug("Applied fix from MQTT",
		logger.String("route_id", routeID),
		logger.String("source", fix.Source))
}

func routeIDFromTopic(topic string) (string, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "ecofleet" || parts[1] != "routes" || parts[3] != "fix" || parts[2] == "" {
		return "", errInvalidTopic
	}
	return parts[2], nil
}

func decodeFix(payload []byte) (models.Fix, error) {
	if utils.IsNMEASentence(payload) {
		return utils.ParseNMEAFix(string(payload))
	}

	var body devicePayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return models.Fix{}, err
	}
	if body.Latitude == nil || body.Longitude == nil {
		return models.Fix{}, models.ErrInvalidFix
	}
	return models.Fix{
		Latitude:  *body.Latitude,
		Longitude: *body.Longitude,
		Source:    models.FixSourceMQTT,
	}, nil
}
