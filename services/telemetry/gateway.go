package telemetry

import (
	"context"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/ecofleet/fleet-telemetry/services/telemetry TelemetryGW

// TelemetryGW defines the interface for outbound telemetry events
type TelemetryGW interface {
	// PublishTelemetry publishes the derived telemetry of an accepted fix
	PublishTelemetry(ctx context.Context, event *models.TelemetryEvent) error
}
