package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// DefaultGeohashPrecision gives cells of roughly 150m x 150m
const DefaultGeohashPrecision uint = 7

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// CalculateDistance calculates the great-circle distance between two points in kilometers
// using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	lat1 := toRadians(point1.Latitude)
	lat2 := toRadians(point2.Latitude)
	dLat := toRadians(point2.Latitude - point1.Latitude)
	dLon := toRadians(point2.Longitude - point1.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// rounding can push a marginally outside [0,1] for near-antipodal points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// EncodeGeohash converts a coordinate pair to a geohash string
func EncodeGeohash(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
