package usecase

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
)

// Thresholds holds the heuristics used to derive live telemetry
type Thresholds struct {
	DeviationFactor float64
	MaxSpeedKmh     float64
	NoiseFloorKm    float64
}

// DefaultThresholds returns a 20% deviation slack, a 200 km/h clamp and a 1 m noise floor
func DefaultThresholds() Thresholds {
	return Thresholds{
		DeviationFactor: 1.2,
		MaxSpeedKmh:     200,
		NoiseFloorKm:    0.001,
	}
}

// ThresholdsFromConfig builds thresholds from configuration, keeping defaults for unset values
func ThresholdsFromConfig(cfg models.TelemetryConfig) Thresholds {
	t := DefaultThresholds()
	if cfg.DeviationFactor > 0 {
		t.DeviationFactor = cfg.DeviationFactor
	}
	if cfg.MaxSpeedKmh > 0 {
		t.MaxSpeedKmh = cfg.MaxSpeedKmh
	}
	if cfg.NoiseFloorKm > 0 {
		t.NoiseFloorKm = cfg.NoiseFloorKm
	}
	return t
}

var errNonPositiveElapsed = errors.New("non-positive elapsed time")

// Engine performs the live state transition of a route for one fix
type Engine struct {
	thresholds Thresholds
	now        func() time.Time
}

// NewEngine creates an engine; now supplies the processing timestamp of each fix
func NewEngine(thresholds Thresholds, now func() time.Time) *Engine {
	if now == nil {
		now = models.Now
	}
	return &Engine{thresholds: thresholds, now: now}
}

// Apply moves route to the fix position and recomputes speed, remaining distance
// and deviation in place. Status is never read nor written.
func (e *Engine) Apply(route *models.Route, fix models.Fix) {
	prevLat, prevLon := route.CurrentLat, route.CurrentLon
	prevTS := route.LastGPSUpdate

	now := e.now().UTC()
	route.CurrentLat = models.Float64Ptr(fix.Latitude)
	route.CurrentLon = models.Float64Ptr(fix.Longitude)
	route.LastGPSUpdate = models.StringPtr(models.FormatTime(now))

	current := utils.GeoPoint{Latitude: fix.Latitude, Longitude: fix.Longitude}

	speed := 0.0
	if prevLat != nil && prevLon != nil && prevTS != nil {
		previous := utils.GeoPoint{Latitude: *prevLat, Longitude: *prevLon}
		s, err := e.speed(previous, current, *prevTS, now)
		if err != nil && !errors.Is(err, errNonPositiveElapsed) {
			logger.Warn("Speed derivation failed, reporting zero",
				logger.String("route_id", route.ID),
				logger.Err(err))
		}
		speed = s
	}
	route.CurrentSpeedKmh = models.Float64Ptr(speed)

	if !route.HasDestination() {
		return
	}
	destination := utils.GeoPoint{Latitude: *route.DestLat, Longitude: *route.DestLon}
	remaining := utils.CalculateDistance(current, destination)
	route.RemainingDistanceKm = models.Float64Ptr(remaining)

	if route.HasOrigin() {
		origin := utils.GeoPoint{Latitude: *route.OriginLat, Longitude: *route.OriginLon}
		planned := utils.CalculateDistance(origin, destination)
		route.Deviated = remaining > planned*e.thresholds.DeviationFactor
	}
}

// speed returns the average speed between two fixes in km/h, clamped to
// [0, MaxSpeedKmh]. Displacements at or under the noise floor count as no motion.
func (e *Engine) speed(previous, current utils.GeoPoint, prevTS string, now time.Time) (float64, error) {
	hours, err := elapsedHours(prevTS, now)
	if err != nil {
		return 0, err
	}

	distance := utils.CalculateDistance(previous, current)
	if distance <= e.thresholds.NoiseFloorKm {
		return 0, nil
	}

	return math.Min(math.Max(distance/hours, 0), e.thresholds.MaxSpeedKmh), nil
}

// elapsedHours returns the hours between a stored fix timestamp and now
func elapsedHours(prevTS string, now time.Time) (float64, error) {
	prev, err := models.ParseTime(prevTS)
	if err != nil {
		return 0, fmt.Errorf("unparsable previous timestamp %q: %w", prevTS, err)
	}

	hours := now.Sub(prev).Hours()
	if hours <= 0 {
		return 0, errNonPositiveElapsed
	}
	return hours, nil
}
