package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/constants"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/database"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/go-redis/redis/v8"
)

// LiveRepo caches the last known position of every route in Redis
type LiveRepo struct {
	redisClient *database.RedisClient
}

// NewLiveRepository creates a new live position repository
func NewLiveRepository(redisClient *database.RedisClient) *LiveRepo {
	return &LiveRepo{redisClient: redisClient}
}

// StorePosition writes the route's current position to its hash and to the GEO set
func (r *LiveRepo) StorePosition(ctx context.Context, route *models.Route, ttl time.Duration) error {
	if !route.HasPosition() {
		return models.ErrNoPosition
	}
	lat, lon := *route.CurrentLat, *route.CurrentLon

	values := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(lat, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(lon, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodeGeohash(lat, lon, utils.DefaultGeohashPrecision),
		constants.FieldVehicleID: route.VehicleID,
	}
	if route.LastGPSUpdate != nil {
		values[constants.FieldTimestamp] = *route.LastGPSUpdate
	}
	if route.CurrentSpeedKmh != nil {
		values[constants.FieldSpeed] = strconv.FormatFloat(*route.CurrentSpeedKmh, 'f', -1, 64)
	}

	key := fmt.Sprintf(constants.KeyRouteLive, route.ID)
	err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, values)
		pipe.Expire(ctx, key, ttl)
		pipe.GeoAdd(ctx, constants.KeyRoutesGeo, &redis.GeoLocation{
			Longitude: lon,
			Latitude:  lat,
			Name:      route.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store live position: %w", err)
	}
	return nil
}

// GetPosition returns the cached position, or models.ErrNoPosition when absent
func (r *LiveRepo) GetPosition(ctx context.Context, routeID string) (*models.LivePosition, error) {
	key := fmt.Sprintf(constants.KeyRouteLive, routeID)
	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get live position: %w", err)
	}
	if len(values) == 0 {
		return nil, models.ErrNoPosition
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached latitude for route %s: %w", routeID, err)
	}
	lon, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cached longitude for route %s: %w", routeID, err)
	}

	pos := &models.LivePosition{
		Latitude:  lat,
		Longitude: lon,
		Geohash:   values[constants.FieldGeohash],
	}
	if ts, ok := values[constants.FieldTimestamp]; ok {
		if parsed, err := models.ParseTime(ts); err == nil {
			pos.Timestamp = &parsed
		}
	}
	return pos, nil
}

// RemovePosition drops the cached position and the GEO set member
func (r *LiveRepo) RemovePosition(ctx context.Context, routeID string) error {
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyRouteLive, routeID)); err != nil {
		return fmt.Errorf("failed to delete live position: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyRoutesGeo, routeID); err != nil {
		return fmt.Errorf("failed to remove route from geo index: %w", err)
	}
	return nil
}

// FindNearby returns routes within radiusKm of a point, nearest first.
// GEO members whose position hash has expired are pruned from the index.
func (r *LiveRepo) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.NearbyRoute, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyRoutesGeo, lon, lat, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	keys := make([]string, len(locations))
	for i, loc := range locations {
		keys[i] = fmt.Sprintf(constants.KeyRouteLive, loc.Name)
	}
	live, err := r.redisClient.ExistingKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to check live positions: %w", err)
	}

	routes := make([]models.NearbyRoute, 0, len(locations))
	for i, loc := range locations {
		if !live[i] {
			if err := r.redisClient.ZRem(ctx, constants.KeyRoutesGeo, loc.Name); err != nil {
				logger.Warn("Failed to prune expired route from geo index",
					logger.String("route_id", loc.Name),
					logger.Err(err))
			}
			continue
		}
		routes = append(routes, models.NearbyRoute{
			RouteID:    loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		})
	}
	return routes, nil
}
