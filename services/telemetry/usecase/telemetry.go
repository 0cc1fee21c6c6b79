package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/keylock"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const defaultLiveTTL = 24 * time.Hour

// TelemetryUC implements the telemetry.TelemetryUC interface
type TelemetryUC struct {
	routeRepo telemetry.RouteRepo
	liveRepo  telemetry.LiveRepo
	gateway   telemetry.TelemetryGW
	engine    *Engine
	locks     *keylock.KeyLock
	liveTTL   time.Duration
	// routes whose cached position could be neither refreshed nor dropped
	staleLive cmap.ConcurrentMap[string, struct{}]
	now       func() time.Time
}

// Option customizes a TelemetryUC
type Option func(*TelemetryUC)

// WithClock overrides the wall clock used for fix and bookkeeping timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *TelemetryUC) {
		uc.now = now
	}
}

// NewTelemetryUC creates a new telemetry use case.
// liveRepo and gateway are optional; a nil value disables the matching side effect.
func NewTelemetryUC(
	cfg *models.Config,
	routeRepo telemetry.RouteRepo,
	liveRepo telemetry.LiveRepo,
	gateway telemetry.TelemetryGW,
	opts ...Option,
) *TelemetryUC {
	uc := &TelemetryUC{
		routeRepo: routeRepo,
		liveRepo:  liveRepo,
		gateway:   gateway,
		locks:     keylock.New(),
		staleLive: cmap.New[struct{}](),
		liveTTL:   defaultLiveTTL,
		now:       models.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}

	thresholds := DefaultThresholds()
	if cfg != nil {
		thresholds = ThresholdsFromConfig(cfg.Telemetry)
		if cfg.Telemetry.LiveTTLHours > 0 {
			uc.liveTTL = time.Duration(cfg.Telemetry.LiveTTLHours) * time.Hour
		}
	}
	uc.engine = NewEngine(thresholds, uc.now)

	return uc
}

// ApplyFix moves a route to a new GPS fix and derives its live telemetry
func (uc *TelemetryUC) ApplyFix(ctx context.Context, routeID string, fix models.Fix) (*models.Route, error) {
	if err := fix.Validate(); err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(routeID)
	defer unlock()

	route, err := uc.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	uc.engine.Apply(route, fix)
	route.UpdatedAt = uc.now()

	if err := uc.routeRepo.Save(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to save route %s: %w", routeID, err)
	}

	logger.Debug("Fix applied",
		logger.String("route_id", routeID),
		logger.String("source", fix.Source),
		logger.Float64("speed_kmh", *route.CurrentSpeedKmh),
		logger.Bool("deviated", route.Deviated))

	uc.afterFix(ctx, route)
	return route, nil
}

// afterFix refreshes the live cache and publishes the telemetry event.
// Failures are logged and never fail the update.
func (uc *TelemetryUC) afterFix(ctx context.Context, route *models.Route) {
	if uc.liveRepo != nil {
		if err := uc.liveRepo.StorePosition(ctx, route, uc.liveTTL); err != nil {
			logger.Warn("Failed to cache live position",
				logger.String("route_id", route.ID),
				logger.Err(err))
			uc.dropLive(ctx, route.ID)
		} else {
			uc.staleLive.Remove(route.ID)
		}
	}

	if uc.gateway != nil {
		event := &models.TelemetryEvent{
			RouteID:             route.ID,
			VehicleID:           route.VehicleID,
			Latitude:            *route.CurrentLat,
			Longitude:           *route.CurrentLon,
			Geohash:             utils.EncodeGeohash(*route.CurrentLat, *route.CurrentLon, utils.DefaultGeohashPrecision),
			SpeedKmh:            *route.CurrentSpeedKmh,
			RemainingDistanceKm: route.RemainingDistanceKm,
			Deviated:            route.Deviated,
			Timestamp:           uc.now(),
		}
		if err := uc.gateway.PublishTelemetry(ctx, event); err != nil {
			logger.Warn("Failed to publish telemetry event",
				logger.String("route_id", route.ID),
				logger.Err(err))
		}
	}
}

// dropLive removes a cached position that no longer matches the store.
// When Redis refuses the removal too, reads bypass the cache for the route
// until a later write succeeds.
func (uc *TelemetryUC) dropLive(ctx context.Context, routeID string) {
	if err := uc.liveRepo.RemovePosition(ctx, routeID); err != nil {
		logger.Warn("Failed to drop outdated live position",
			logger.String("route_id", routeID),
			logger.Err(err))
		uc.staleLive.Set(routeID, struct{}{})
		return
	}
	uc.staleLive.Remove(routeID)
}

// refreshLive reloads a route whose cache is marked outdated and tries to
// cache it again. It runs under the route lock so a concurrent fix is never
// overwritten by an older snapshot.
func (uc *TelemetryUC) refreshLive(ctx context.Context, routeID string) (*models.Route, error) {
	unlock := uc.locks.Lock(routeID)
	defer unlock()

	route, err := uc.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if !route.HasPosition() || !uc.staleLive.Has(routeID) {
		return route, nil
	}
	if err := uc.liveRepo.StorePosition(ctx, route, uc.liveTTL); err != nil {
		logger.Warn("Live position still outdated",
			logger.String("route_id", routeID),
			logger.Err(err))
		return route, nil
	}
	uc.staleLive.Remove(routeID)
	return route, nil
}

// GetLivePosition returns the last known position of a route, cache first
func (uc *TelemetryUC) GetLivePosition(ctx context.Context, routeID string) (*models.LivePosition, error) {
	if uc.liveRepo != nil && uc.staleLive.Has(routeID) {
		route, err := uc.refreshLive(ctx, routeID)
		if err != nil {
			return nil, err
		}
		return livePositionOf(route)
	}

	if uc.liveRepo != nil {
		pos, err := uc.liveRepo.GetPosition(ctx, routeID)
		if err == nil {
			return pos, nil
		}
		if !errors.Is(err, models.ErrNoPosition) {
			logger.Warn("Live cache lookup failed, falling back to route store",
				logger.String("route_id", routeID),
				logger.Err(err))
		}
	}

	route, err := uc.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return livePositionOf(route)
}

func livePositionOf(route *models.Route) (*models.LivePosition, error) {
	if !route.HasPosition() {
		return nil, models.ErrNoPosition
	}

	pos := &models.LivePosition{
		Latitude:  *route.CurrentLat,
		Longitude: *route.CurrentLon,
		Geohash:   utils.EncodeGeohash(*route.CurrentLat, *route.CurrentLon, utils.DefaultGeohashPrecision),
	}
	if route.LastGPSUpdate != nil {
		if ts, err := models.ParseTime(*route.LastGPSUpdate); err == nil {
			pos.Timestamp = &ts
		}
	}
	return pos, nil
}

// FindNearbyRoutes returns routes whose live position lies within radiusKm of a point
func (uc *TelemetryUC) FindNearbyRoutes(ctx context.Context, lat, lon, radiusKm float64) ([]models.NearbyRoute, error) {
	if err := (models.Fix{Latitude: lat, Longitude: lon}).Validate(); err != nil {
		return nil, fmt.Errorf("%w: center out of range", models.ErrInvalidQuery)
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", models.ErrInvalidQuery)
	}
	if uc.liveRepo == nil {
		return []models.NearbyRoute{}, nil
	}

	routes, err := uc.liveRepo.FindNearby(ctx, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby routes: %w", err)
	}
	if uc.staleLive.Count() == 0 {
		return routes, nil
	}
	return uc.correctStale(ctx, routes, lat, lon, radiusKm), nil
}

// correctStale replaces outdated GEO entries with the stored position,
// dropping routes that have left the search radius.
func (uc *TelemetryUC) correctStale(ctx context.Context, routes []models.NearbyRoute, lat, lon, radiusKm float64) []models.NearbyRoute {
	center := utils.GeoPoint{Latitude: lat, Longitude: lon}
	corrected := make([]models.NearbyRoute, 0, len(routes))
	for _, nearby := range routes {
		if !uc.staleLive.Has(nearby.RouteID) {
			corrected = append(corrected, nearby)
			continue
		}
		route, err := uc.refreshLive(ctx, nearby.RouteID)
		if err != nil || !route.HasPosition() {
			continue
		}
		current := utils.GeoPoint{Latitude: *route.CurrentLat, Longitude: *route.CurrentLon}
		distance := utils.CalculateDistance(center, current)
		if distance > radiusKm {
			continue
		}
		corrected = append(corrected, models.NearbyRoute{
			RouteID:    route.ID,
			Latitude:   current.Latitude,
			Longitude:  current.Longitude,
			DistanceKm: distance,
		})
	}
	sort.SliceStable(corrected, func(i, j int) bool {
		return corrected[i].DistanceKm < corrected[j].DistanceKm
	})
	return corrected
}
