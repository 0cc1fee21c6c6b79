package models

import (
	"math"
	"time"
)

// Fix sources
const (
	FixSourceHTTP = "http"
	FixSourceNSQ  = "nsq"
	FixSourceMQTT = "mqtt"
	FixSourceNMEA = "nmea"
)

// Fix is a single reported GPS position for a route
type Fix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source,omitempty"`
}

// Validate checks that the fix carries usable coordinates
func (f Fix) Validate() error {
	if math.IsNaN(f.Latitude) || math.IsInf(f.Latitude, 0) ||
		math.IsNaN(f.Longitude) || math.IsInf(f.Longitude, 0) {
		return ErrInvalidFix
	}
	if f.Latitude < -90 || f.Latitude > 90 {
		return ErrInvalidFix
	}
	if f.Longitude < -180 || f.Longitude > 180 {
		return ErrInvalidFix
	}
	return nil
}

// FixMessage is a fix delivered through a message bus
type FixMessage struct {
	RouteID   string  `json:"route_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LivePosition is the last known position of a route
type LivePosition struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Geohash   string     `json:"geohash,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// TelemetryEvent is published after every accepted fix
type TelemetryEvent struct {
	RouteID             string    `json:"route_id"`
	VehicleID           string    `json:"vehicle_id"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	Geohash             string    `json:"geohash"`
	SpeedKmh            float64   `json:"speed_kmh"`
	RemainingDistanceKm *float64  `json:"remaining_distance_km,omitempty"`
	Deviated            bool      `json:"deviated"`
	Timestamp           time.Time `json:"timestamp"`
}
