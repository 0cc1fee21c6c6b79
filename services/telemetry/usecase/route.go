package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/google/uuid"
)

// CreateRoute plans a new route. Live telemetry always starts empty.
func (uc *TelemetryUC) CreateRoute(ctx context.Context, req *models.RouteRequest) (*models.Route, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", models.ErrInvalidRoute)
	}

	status := models.RouteStatusPlanned
	if req.Status != "" {
		status = models.RouteStatus(strings.ToUpper(req.Status))
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidRoute, req.Status)
		}
	}

	if err := validateEndpoint("origin", req.OriginLat, req.OriginLon); err != nil {
		return nil, err
	}
	if err := validateEndpoint("destination", req.DestLat, req.DestLon); err != nil {
		return nil, err
	}
	if req.EstimatedDistanceKm != nil && *req.EstimatedDistanceKm < 0 {
		return nil, fmt.Errorf("%w: estimated distance must not be negative", models.ErrInvalidRoute)
	}

	now := uc.now()
	date := now.Format(plannedDateLayout)
	if req.Date != "" {
		if err := validatePlannedDate(req.Date); err != nil {
			return nil, err
		}
		date = req.Date
	}

	route := &models.Route{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		Origin:              req.Origin,
		Destination:         req.Destination,
		VehicleID:           req.VehicleID,
		EstimatedDistanceKm: req.EstimatedDistanceKm,
		Status:              status,
		Date:                date,
		OriginLat:           req.OriginLat,
		OriginLon:           req.OriginLon,
		DestLat:             req.DestLat,
		DestLon:             req.DestLon,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if route.EstimatedDistanceKm == nil && route.HasOrigin() && route.HasDestination() {
		planned := utils.CalculateDistance(
			utils.GeoPoint{Latitude: *route.OriginLat, Longitude: *route.OriginLon},
			utils.GeoPoint{Latitude: *route.DestLat, Longitude: *route.DestLon},
		)
		route.EstimatedDistanceKm = models.Float64Ptr(planned)
	}

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	logger.Info("Route created",
		logger.String("route_id", route.ID),
		logger.String("vehicle_id", route.VehicleID))

	return route, nil
}

// GetRoute returns a route by id
func (uc *TelemetryUC) GetRoute(ctx context.Context, routeID string) (*models.Route, error) {
	return uc.routeRepo.FindByID(ctx, routeID)
}

// ListRoutes returns every route, or only those of vehicleID when it is not empty
func (uc *TelemetryUC) ListRoutes(ctx context.Context, vehicleID string) ([]*models.Route, error) {
	var (
		routes []*models.Route
		err    error
	)
	if vehicleID != "" {
		routes, err = uc.routeRepo.ListByVehicle(ctx, vehicleID)
	} else {
		routes, err = uc.routeRepo.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	if routes == nil {
		routes = []*models.Route{}
	}
	return routes, nil
}

const plannedDateLayout = "2006-01-02"

func validatePlannedDate(date string) error {
	if _, err := time.Parse(plannedDateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", models.ErrInvalidRoute)
	}
	return nil
}

// UpdateRoute applies the generic update. Only status, vehicle, name and date are
// written directly; a coordinate pair goes through the engine like any fix and
// a client supplied deviation flag is ignored.
func (uc *TelemetryUC) UpdateRoute(ctx context.Context, routeID string, update models.RouteUpdate) (*models.Route, error) {
	var fix *models.Fix
	switch {
	case update.CurrentLat != nil && update.CurrentLon != nil:
		fix = &models.Fix{
			Latitude:  *update.CurrentLat,
			Longitude: *update.CurrentLon,
			Source:    models.FixSourceHTTP,
		}
		if err := fix.Validate(); err != nil {
			return nil, err
		}
	case update.CurrentLat != nil || update.CurrentLon != nil:
		return nil, fmt.Errorf("%w: current_lat and current_lon must be sent together", models.ErrInvalidFix)
	}

	if update.Date != nil {
		if err := validatePlannedDate(*update.Date); err != nil {
			return nil, err
		}
	}

	var status models.RouteStatus
	if update.Status != nil {
		status = models.RouteStatus(strings.ToUpper(*update.Status))
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidRoute, *update.Status)
		}
	}

	unlock := uc.locks.Lock(routeID)
	defer unlock()

	route, err := uc.routeRepo.FindByID(ctx, routeID)
	if err != nil {
		return nil, err
	}

	previousStatus := route.Status
	if status != "" {
		// a transition never touches the live position
		route.Status = status
	}
	if update.VehicleID != nil {
		route.VehicleID = *update.VehicleID
	}
	if update.Name != nil {
		route.Name = *update.Name
	}
	if update.Date != nil {
		route.Date = *update.Date
	}
	if fix != nil {
		uc.engine.Apply(route, *fix)
	}
	route.UpdatedAt = uc.now()

	if err := uc.routeRepo.Save(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to save route %s: %w", routeID, err)
	}

	if previousStatus != route.Status {
		logger.Info("Route status changed",
			logger.String("route_id", routeID),
			logger.String("from", string(previousStatus)),
			logger.String("to", string(route.Status)))
	}

	if fix != nil {
		uc.afterFix(ctx, route)
	}
	if route.Status == models.RouteStatusCompleted {
		uc.removeLive(ctx, routeID)
	}

	return route, nil
}

// DeleteRoute removes a route and its live position
func (uc *TelemetryUC) DeleteRoute(ctx context.Context, routeID string) error {
	unlock := uc.locks.Lock(routeID)
	defer unlock()

	if err := uc.routeRepo.Delete(ctx, routeID); err != nil {
		return err
	}
	uc.removeLive(ctx, routeID)

	logger.Info("Route deleted", logger.String("route_id", routeID))
	return nil
}

func (uc *TelemetryUC) removeLive(ctx context.Context, routeID string) {
	if uc.liveRepo == nil {
		return
	}
	if err := uc.liveRepo.RemovePosition(ctx, routeID); err != nil {
		logger.Warn("Failed to remove live position",
			logger.String("route_id", routeID),
			logger.Err(err))
	}
}

func validateEndpoint(name string, lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return fmt.Errorf("%w: %s latitude and longitude must be sent together", models.ErrInvalidRoute, name)
	}
	if err := (models.Fix{Latitude: *lat, Longitude: *lon}).Validate(); err != nil {
		return fmt.Errorf("%w: %s coordinates out of range", models.ErrInvalidRoute, name)
	}
	return nil
}
