package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const routeColumns = `id, name, origin, destination, vehicle_id, estimated_distance_km, status, planned_date,
	origin_lat, origin_lon, dest_lat, dest_lon,
	current_lat, current_lon, last_gps_update, current_speed_kmh, remaining_distance_km, deviated,
	created_at, updated_at`

// RouteSQLRepo stores routes in postgres or mysql
type RouteSQLRepo struct {
	db *sqlx.DB
}

// NewRouteSQLRepository creates a new SQL route repository
func NewRouteSQLRepository(db *sqlx.DB) *RouteSQLRepo {
	return &RouteSQLRepo{db: db}
}

// FindByID retrieves a route by ID
func (r *RouteSQLRepo) FindByID(ctx context.Context, routeID string) (*models.Route, error) {
	query := r.db.Rebind(`SELECT ` + routeColumns + ` FROM routes WHERE id = ?`)

	route := &models.Route{}
	if err := r.db.GetContext(ctx, route, query, routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrRouteNotFound, routeID)
		}
		return nil, fmt.Errorf("failed to get route %s: %w", routeID, err)
	}
	return route, nil
}

// Save overwrites every mutable column of a route in a single statement
func (r *RouteSQLRepo) Save(ctx context.Context, route *models.Route) error {
	query := r.db.Rebind(`
		UPDATE routes SET
			name = ?, origin = ?, destination = ?, vehicle_id = ?, estimated_distance_km = ?, status = ?, planned_date = ?,
			origin_lat = ?, origin_lon = ?, dest_lat = ?, dest_lon = ?,
			current_lat = ?, current_lon = ?, last_gps_update = ?, current_speed_kmh = ?,
			remaining_distance_km = ?, deviated = ?, updated_at = ?
		WHERE id = ?`)

	result, err := r.db.ExecContext(ctx, query,
		route.Name,
		route.Origin,
		route.Destination,
		route.VehicleID,
		route.EstimatedDistanceKm,
		route.Status,
		route.Date,
		route.OriginLat,
		route.OriginLon,
		route.DestLat,
		route.DestLon,
		route.CurrentLat,
		route.CurrentLon,
		route.LastGPSUpdate,
		route.CurrentSpeedKmh,
		route.RemainingDistanceKm,
		route.Deviated,
		route.UpdatedAt,
		route.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update route %s: %w", route.ID, err)
	}

	return checkAffected(result, route.ID)
}

// Create inserts a new route
func (r *RouteSQLRepo) Create(ctx context.Context, route *models.Route) error {
	query := r.db.Rebind(`INSERT INTO routes (` + routeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		route.ID,
		route.Name,
		route.Origin,
		route.Destination,
		route.VehicleID,
		route.EstimatedDistanceKm,
		route.Status,
		route.Date,
		route.OriginLat,
		route.OriginLon,
		route.DestLat,
		route.DestLon,
		route.CurrentLat,
		route.CurrentLon,
		route.LastGPSUpdate,
		route.CurrentSpeedKmh,
		route.RemainingDistanceKm,
		route.Deviated,
		route.CreatedAt,
		route.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert route: %w", err)
	}
	return nil
}

// List returns every route, newest first
func (r *RouteSQLRepo) List(ctx context.Context) ([]*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes ORDER BY created_at DESC`

	routes := []*models.Route{}
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}
	return routes, nil
}

// ListByVehicle returns the routes assigned to a vehicle, newest first
func (r *RouteSQLRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]*models.Route, error) {
	query := r.db.Rebind(`SELECT ` + routeColumns + ` FROM routes WHERE vehicle_id = ? ORDER BY created_at DESC`)

	routes := []*models.Route{}
	if err := r.db.SelectContext(ctx, &routes, query, vehicleID); err != nil {
		return nil, fmt.Errorf("failed to list routes of vehicle %s: %w", vehicleID, err)
	}
	return routes, nil
}

// Delete removes a route
func (r *RouteSQLRepo) Delete(ctx context.Context, routeID string) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM routes WHERE id = ?`), routeID)
	if err != nil {
		return fmt.Errorf("failed to delete route %s: %w", routeID, err)
	}
	return checkAffected(result, routeID)
}

func checkAffected(result sql.Result, routeID string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", models.ErrRouteNotFound, routeID)
	}
	return nil
}
