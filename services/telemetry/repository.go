package telemetry

import (
	"context"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ecofleet/fleet-telemetry/services/telemetry RouteRepo,LiveRepo

// RouteRepo defines the interface for durable route storage
type RouteRepo interface {
	// FindByID returns models.ErrRouteNotFound when the id is unknown
	FindByID(ctx context.Context, routeID string) (*models.Route, error)
	// Save overwrites the whole record in one write
	Save(ctx context.Context, route *models.Route) error

	Create(ctx context.Context, route *models.Route) error
	List(ctx context.Context) ([]*models.Route, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]*models.Route, error)
	Delete(ctx context.Context, routeID string) error
}

// LiveRepo defines the interface for the live position cache
type LiveRepo interface {
	StorePosition(ctx context.Context, route *models.Route, ttl time.Duration) error
	GetPosition(ctx context.Context, routeID string) (*models.LivePosition, error)
	RemovePosition(ctx context.Context, routeID string) error
	FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.NearbyRoute, error)
}
