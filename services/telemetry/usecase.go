package telemetry

import (
	"context"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ecofleet/fleet-telemetry/services/telemetry TelemetryUC

// TelemetryUC defines the interface for route telemetry business logic
type TelemetryUC interface {
	// Live telemetry operations
	ApplyFix(ctx context.Context, routeID string, fix models.Fix) (*models.Route, error)
	GetLivePosition(ctx context.Context, routeID string) (*models.LivePosition, error)
	FindNearbyRoutes(ctx context.Context, lat, lon, radiusKm float64) ([]models.NearbyRoute, error)

	// Route planning operations
	CreateRoute(ctx context.Context, req *models.RouteRequest) (*models.Route, error)
	GetRoute(ctx context.Context, routeID string) (*models.Route, error)
	ListRoutes(ctx context.Context, vehicleID string) ([]*models.Route, error)
	UpdateRoute(ctx context.Context, routeID string, update models.RouteUpdate) (*models.Route, error)
	DeleteRoute(ctx context.Context, routeID string) error
}
