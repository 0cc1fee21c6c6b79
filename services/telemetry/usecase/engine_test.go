package usecase

import (
	"testing"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// planned distance between these endpoints is ~100.08 km
func plannedRoute() *models.Route {
	return &models.Route{
		ID:        "route-1",
		Status:    models.RouteStatusInProgress,
		OriginLat: models.Float64Ptr(0),
		OriginLon: models.Float64Ptr(0),
		DestLat:   models.Float64Ptr(0),
		DestLon:   models.Float64Ptr(0.9),
	}
}

func TestEngine_FirstFixHasZeroSpeed(t *testing.T) {
	clock := newFakeClock()
	engine := NewEngine(DefaultThresholds(), clock.Now)
	route := plannedRoute()

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0.5})

	require.NotNil(t, route.CurrentSpeedKmh)
	assert.Equal(t, 0.0, *route.CurrentSpeedKmh)
	assert.Equal(t, 0.0, *route.CurrentLat)
	assert.Equal(t, 0.5, *route.CurrentLon)
	require.NotNil(t, route.LastGPSUpdate)
	assert.Equal(t, "2024-03-01T08:00:00Z", *route.LastGPSUpdate)
	assert.Equal(t, models.RouteStatusInProgress, route.Status)
}

func TestEngine_SpeedFromTwoFixes(t *testing.T) {
	clock := newFakeClock()
	engine := NewEngine(DefaultThresholds(), clock.Now)
	route := plannedRoute()

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0})
	clock.Advance(time.Hour)
	// 0.54 degrees along the equator is ~60.04 km
	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0.54})

	assert.InDelta(t, 60.0, *route.CurrentSpeedKmh, 0.5)
	assert.Equal(t, "2024-03-01T09:00:00Z", *route.LastGPSUpdate)
}

func TestEngine_SameFixTwiceHasZeroSpeed(t *testing.T) {
	clock := newFakeClock()
	engine := NewEngine(DefaultThresholds(), clock.Now)
	route := plannedRoute()

	fix := models.Fix{Latitude: 40.4168, Longitude: -3.7038}
	engine.Apply(route, fix)
	clock.Advance(5 * time.Second)
	engine.Apply(route, fix)

	assert.Equal(t, 0.0, *route.CurrentSpeedKmh)
}

func TestEngine_SpeedForcedToZero(t *testing.T) {
	tests := []struct {
		name     string
		prevTS   string
		advance  time.Duration
		next     models.Fix
		expected float64
	}{
		{
			name:    "Zero elapsed time",
			advance: 0,
			next:    models.Fix{Latitude: 0, Longitude: 0.1},
		},
		{
			name:    "Previous timestamp in the future",
			prevTS:  "2024-03-01T09:00:00Z",
			advance: time.Minute,
			next:    models.Fix{Latitude: 0, Longitude: 0.1},
		},
		{
			name:    "Displacement under one meter",
			advance: time.Second,
			next:    models.Fix{Latitude: 0, Longitude: 0.000008},
		},
		{
			name:    "Unparsable previous timestamp",
			prevTS:  "yesterday at noon",
			advance: time.Minute,
			next:    models.Fix{Latitude: 0, Longitude: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			engine := NewEngine(DefaultThresholds(), clock.Now)
			route := plannedRoute()

			engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0})
			if tt.prevTS != "" {
				route.LastGPSUpdate = models.StringPtr(tt.prevTS)
			}
			clock.Advance(tt.advance)
			engine.Apply(route, tt.next)

			assert.Equal(t, 0.0, *route.CurrentSpeedKmh)
			// the position is accepted even when speed cannot be derived
			assert.Equal(t, tt.next.Longitude, *route.CurrentLon)
			assert.Equal(t, models.FormatTime(clock.Now()), *route.LastGPSUpdate)
		})
	}
}

func TestEngine_SpeedIsClamped(t *testing.T) {
	clock := newFakeClock()
	engine := NewEngine(DefaultThresholds(), clock.Now)
	route := plannedRoute()

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0})
	clock.Advance(time.Hour)
	// ~556 km in one hour
	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 5})

	assert.Equal(t, 200.0, *route.CurrentSpeedKmh)
}

func TestEngine_RemainingDistance(t *testing.T) {
	t.Run("Computed when destination is known", func(t *testing.T) {
		engine := NewEngine(DefaultThresholds(), newFakeClock().Now)
		route := plannedRoute()

		engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0.45})

		require.NotNil(t, route.RemainingDistanceKm)
		assert.InDelta(t, 50.04, *route.RemainingDistanceKm, 0.05)
	})

	t.Run("Left unchanged without destination", func(t *testing.T) {
		engine := NewEngine(DefaultThresholds(), newFakeClock().Now)
		route := &models.Route{ID: "route-2", RemainingDistanceKm: models.Float64Ptr(42)}

		engine.Apply(route, models.Fix{Latitude: 10, Longitude: 10})

		assert.Equal(t, 42.0, *route.RemainingDistanceKm)
		assert.False(t, route.Deviated)
	})

	t.Run("Stays unset without destination", func(t *testing.T) {
		engine := NewEngine(DefaultThresholds(), newFakeClock().Now)
		route := &models.Route{ID: "route-3", OriginLat: models.Float64Ptr(0), OriginLon: models.Float64Ptr(0)}

		engine.Apply(route, models.Fix{Latitude: 10, Longitude: 10})

		assert.Nil(t, route.RemainingDistanceKm)
	})
}

func TestEngine_Deviation(t *testing.T) {
	tests := []struct {
		name     string
		fix      models.Fix
		expected bool
	}{
		{
			name:     "Remaining over planned plus slack",
			fix:      models.Fix{Latitude: 0, Longitude: -0.3}, // ~133 km to destination
			expected: true,
		},
		{
			name:     "Remaining under planned",
			fix:      models.Fix{Latitude: 0, Longitude: 0.09}, // ~90 km to destination
			expected: false,
		},
		{
			name:     "Within slack",
			fix:      models.Fix{Latitude: 0, Longitude: -0.1}, // ~111 km to destination
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := NewEngine(DefaultThresholds(), newFakeClock().Now)
			route := plannedRoute()

			engine.Apply(route, tt.fix)

			assert.Equal(t, tt.expected, route.Deviated)
		})
	}
}

func TestEngine_DeviationRecoversWithEndpoints(t *testing.T) {
	engine := NewEngine(DefaultThresholds(), newFakeClock().Now)
	route := plannedRoute()

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: -0.3})
	require.True(t, route.Deviated)

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0.5})
	assert.False(t, route.Deviated)
}

func TestEngine_DeviationUnchangedWithoutOrigin(t *testing.T) {
	engine := NewEngine(DefaultThresholds(), newFakeClock().Now)
	route := plannedRoute()
	route.OriginLat, route.OriginLon = nil, nil
	route.Deviated = true

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0.85})

	// remaining distance is still refreshed
	assert.InDelta(t, 5.56, *route.RemainingDistanceKm, 0.05)
	assert.True(t, route.Deviated)
}

func TestEngine_CustomThresholds(t *testing.T) {
	clock := newFakeClock()
	engine := NewEngine(Thresholds{
		DeviationFactor: 1.5,
		MaxSpeedKmh:     100,
		NoiseFloorKm:    0.001,
	}, clock.Now)
	route := plannedRoute()

	engine.Apply(route, models.Fix{Latitude: 0, Longitude: 0})
	clock.Advance(time.Hour)
	engine.Apply(route, models.Fix{Latitude: 0, Longitude: -1.2})

	assert.Equal(t, 100.0, *route.CurrentSpeedKmh)
	// ~233 km remaining is over 1.5 x 100 km
	assert.True(t, route.Deviated)

	clock.Advance(time.Hour)
	engine.Apply(route, models.Fix{Latitude: 0, Longitude: -0.3})
	// ~133 km remaining is within 1.5 x 100 km
	assert.False(t, route.Deviated)
}

func TestThresholdsFromConfig(t *testing.T) {
	thresholds := ThresholdsFromConfig(models.TelemetryConfig{DeviationFactor: 1.3})

	assert.Equal(t, 1.3, thresholds.DeviationFactor)
	assert.Equal(t, 200.0, thresholds.MaxSpeedKmh)
	assert.Equal(t, 0.001, thresholds.NoiseFloorKm)
}

func TestElapsedHours(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	hours, err := elapsedHours("2024-03-01T08:00:00.5Z", now)
	require.NoError(t, err)
	assert.InDelta(t, 1.49986, hours, 1e-4)

	_, err = elapsedHours("2024-03-01T10:00:00Z", now)
	assert.ErrorIs(t, err, errNonPositiveElapsed)

	_, err = elapsedHours("not a timestamp", now)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errNonPositiveElapsed)
}
