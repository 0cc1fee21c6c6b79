package simulator

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
)

// PositionClient sends one fix to the telemetry API
type PositionClient interface {
	PutJSON(ctx context.Context, path string, body, out interface{}) error
}

// Result summarizes the replay of one route
type Result struct {
	RouteID string
	Sent    int
	Failed  int
}

// Run replays every route concurrently and returns when all routes finish
// or ctx is cancelled
func Run(ctx context.Context, scenario *Scenario, client PositionClient) []Result {
	results := make([]Result, len(scenario.Routes))

	var wg sync.WaitGroup
	for i, route := range scenario.Routes {
		wg.Add(1)
		go func(i int, route RouteScenario) {
			defer wg.Done()
			results[i] = replayRoute(ctx, route, scenario.Interval, client)
		}(i, route)
	}
	wg.Wait()

	return results
}

func replayRoute(ctx context.Context, route RouteScenario, interval time.Duration, client PositionClient) Result {
	result := Result{RouteID: route.RouteID}
	points := Interpolate(route.Waypoints, route.StepsPerLeg)
	path := fmt.Sprintf("/api/routes/%s/position", url.PathEscape(route.RouteID))

	logger.Info("Starting route replay",
		logger.String("route_id", route.RouteID),
		logger.Int("points", len(points)))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, pt := range points {
		if i > 0 {
			select {
			case <-ctx.Done():
				logger.Info("Route replay cancelled", logger.String("route_id", route.RouteID))
				return result
			case <-ticker.C:
			}
		}

		var ack struct {
			CurrentSpeedKmh     *float64 `json:"current_speed_kmh"`
			RemainingDistanceKm *float64 `json:"remaining_distance_km"`
			Deviated            bool     `json:"deviated"`
		}
		if err := client.PutJSON(ctx, path, pt, &ack); err != nil {
			result.Failed++
			logger.Warn("Failed to send fix",
				logger.String("route_id", route.RouteID),
				logger.Int("point", i+1),
				logger.Err(err))
			continue
		}
		result.Sent++

		fields := []logger.Field{
			logger.String("route_id", route.RouteID),
			logger.Int("point", i+1),
			logger.Float64("latitude", pt.Lat),
			logger.Float64("longitude", pt.Lon),
			logger.Bool("deviated", ack.Deviated),
		}
		if ack.CurrentSpeedKmh != nil {
			fields = append(fields, logger.Float64("speed_kmh", *ack.CurrentSpeedKmh))
		}
		if ack.RemainingDistanceKm != nil {
			fields = append(fields, logger.Float64("remaining_km", *ack.RemainingDistanceKm))
		}
		logger.Debug("Fix accepted", fields...)
	}

	logger.Info("Route replay completed",
		logger.String("route_id", route.RouteID),
		logger.Int("sent", result.Sent),
		logger.Int("failed", result.Failed))
	return result
}
