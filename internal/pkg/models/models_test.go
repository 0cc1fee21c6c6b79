package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFix_Validate(t *testing.T) {
	tests := []struct {
		name    string
		fix     Fix
		wantErr bool
	}{
		{name: "origin", fix: Fix{}},
		{name: "poles and antimeridian", fix: Fix{Latitude: 90, Longitude: -180}},
		{name: "latitude too high", fix: Fix{Latitude: 90.0001}, wantErr: true},
		{name: "longitude too low", fix: Fix{Longitude: -180.5}, wantErr: true},
		{name: "NaN", fix: Fix{Latitude: math.NaN()}, wantErr: true},
		{name: "infinite", fix: Fix{Longitude: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fix.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFix)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRouteStatus_Valid(t *testing.T) {
	assert.True(t, RouteStatusPlanned.Valid())
	assert.True(t, RouteStatusInProgress.Valid())
	assert.True(t, RouteStatusCompleted.Valid())
	assert.False(t, RouteStatus("planned").Valid())
	assert.False(t, RouteStatus("").Valid())
}

func TestRoute_Presence(t *testing.T) {
	r := &Route{OriginLat: Float64Ptr(1)}
	assert.False(t, r.HasOrigin())
	assert.False(t, r.HasDestination())
	assert.False(t, r.HasPosition())

	r.OriginLon = Float64Ptr(2)
	r.DestLat, r.DestLon = Float64Ptr(3), Float64Ptr(4)
	r.CurrentLat, r.CurrentLon = Float64Ptr(0), Float64Ptr(0)
	assert.True(t, r.HasOrigin())
	assert.True(t, r.HasDestination())
	assert.True(t, r.HasPosition())
}

func TestRoute_JSONOmitsUnsetTelemetry(t *testing.T) {
	data, err := json.Marshal(Route{ID: "route-1", Status: RouteStatusPlanned})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "current_lat")
	assert.NotContains(t, raw, "last_gps_update")
	assert.NotContains(t, raw, "current_speed_kmh")
	assert.Equal(t, false, raw["deviated"])
	assert.Equal(t, "PLANNED", raw["status"])
}

func TestFormatAndParseTime(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 123000000, time.FixedZone("CET", 3600))

	formatted := FormatTime(ts)
	assert.Equal(t, "2024-03-01T08:30:00.123Z", formatted)

	parsed, err := ParseTime(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))

	parsed, err = ParseTime("2024-03-01T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 8, parsed.Hour())

	_, err = ParseTime("yesterday")
	assert.Error(t, err)
}

func TestNow_IsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Now().Location())
}
