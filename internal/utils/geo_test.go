package utils

import (
	"math"
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name:      "Same point",
			point1:    GeoPoint{Latitude: 40.4168, Longitude: -3.7038},
			point2:    GeoPoint{Latitude: 40.4168, Longitude: -3.7038},
			expected:  0.0,
			tolerance: 1e-9,
		},
		{
			name:      "One degree of longitude on the equator",
			point1:    GeoPoint{Latitude: 0, Longitude: 0},
			point2:    GeoPoint{Latitude: 0, Longitude: 1},
			expected:  111.19,
			tolerance: 0.5,
		},
		{
			name:      "New York to Los Angeles",
			point1:    GeoPoint{Latitude: 40.7128, Longitude: -74.0060},
			point2:    GeoPoint{Latitude: 34.0522, Longitude: -118.2437},
			expected:  3936,
			tolerance: 10,
		},
		{
			name:      "Madrid to Barcelona",
			point1:    GeoPoint{Latitude: 40.4168, Longitude: -3.7038},
			point2:    GeoPoint{Latitude: 41.3874, Longitude: 2.1686},
			expected:  505,
			tolerance: 5,
		},
		{
			name:      "Cross equator",
			point1:    GeoPoint{Latitude: -1.0, Longitude: 100.0},
			point2:    GeoPoint{Latitude: 1.0, Longitude: 100.0},
			expected:  222.4,
			tolerance: 1.0,
		},
		{
			name:      "Cross 180th meridian",
			point1:    GeoPoint{Latitude: 0.0, Longitude: 179.0},
			point2:    GeoPoint{Latitude: 0.0, Longitude: -179.0},
			expected:  222.4,
			tolerance: 1.0,
		},
		{
			name:      "Antipodal points",
			point1:    GeoPoint{Latitude: 0.0, Longitude: 0.0},
			point2:    GeoPoint{Latitude: 0.0, Longitude: 180.0},
			expected:  math.Pi * EarthRadiusKm,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateDistance(tt.point1, tt.point2)

			assert.GreaterOrEqual(t, result, 0.0)
			assert.InDelta(t, tt.expected, result, tt.tolerance)
		})
	}
}

func TestCalculateDistance_Symmetric(t *testing.T) {
	pairs := [][2]GeoPoint{
		{{Latitude: 40.7128, Longitude: -74.0060}, {Latitude: 34.0522, Longitude: -118.2437}},
		{{Latitude: -33.8688, Longitude: 151.2093}, {Latitude: 51.5074, Longitude: -0.1278}},
		{{Latitude: 89.9, Longitude: 10}, {Latitude: -89.9, Longitude: -170}},
		{{Latitude: 0.0001, Longitude: 0.0001}, {Latitude: 0, Longitude: 0}},
	}

	for _, p := range pairs {
		assert.InDelta(t, CalculateDistance(p[0], p[1]), CalculateDistance(p[1], p[0]), 1e-9)
	}
}

func TestCalculateDistance_EdgeCases(t *testing.T) {
	t.Run("North and South Poles", func(t *testing.T) {
		northPole := GeoPoint{Latitude: 90.0, Longitude: 0.0}
		southPole := GeoPoint{Latitude: -90.0, Longitude: 0.0}

		assert.InDelta(t, math.Pi*EarthRadiusKm, CalculateDistance(northPole, southPole), 0.01)
	})

	t.Run("Very small distance", func(t *testing.T) {
		point1 := GeoPoint{Latitude: 0.0, Longitude: 0.0}
		point2 := GeoPoint{Latitude: 0.0, Longitude: 0.000008}

		distance := CalculateDistance(point1, point2)

		assert.Greater(t, distance, 0.0)
		assert.Less(t, distance, 0.001, "sub-meter displacement")
	})
}

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohash(40.4168, -3.7038, DefaultGeohashPrecision)
	assert.Len(t, hash, int(DefaultGeohashPrecision))
	assert.Equal(t, "ezjmg", hash[:5])

	assert.True(t, geohash.BoundingBox(hash).Contains(40.4168, -3.7038))
}

func BenchmarkCalculateDistance(b *testing.B) {
	point1 := GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	point2 := GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CalculateDistance(point1, point2)
	}
}
