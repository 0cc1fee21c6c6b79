package models

import (
	"time"
)

// RouteStatus represents the lifecycle stage of a route
type RouteStatus string

const (
	RouteStatusPlanned    RouteStatus = "PLANNED"
	RouteStatusInProgress RouteStatus = "IN_PROGRESS"
	RouteStatusCompleted  RouteStatus = "COMPLETED"
)

// Valid reports whether s is one of the known route statuses
func (s RouteStatus) Valid() bool {
	switch s {
	case RouteStatusPlanned, RouteStatusInProgress, RouteStatusCompleted:
		return true
	}
	return false
}

// Route is a planned trip of a vehicle together with its live telemetry snapshot.
// Live fields stay nil until the first fix is applied.
type Route struct {
	ID                  string      `json:"id" db:"id" bson:"_id"`
	Name                string      `json:"name" db:"name" bson:"name"`
	Origin              string      `json:"origin" db:"origin" bson:"origin"`
	Destination         string      `json:"destination" db:"destination" bson:"destination"`
	VehicleID           string      `json:"vehicle_id" db:"vehicle_id" bson:"vehicle_id"`
	EstimatedDistanceKm *float64    `json:"estimated_distance_km,omitempty" db:"estimated_distance_km" bson:"estimated_distance_km,omitempty"`
	Status              RouteStatus `json:"status" db:"status" bson:"status"`

	// Date is the planned day of the trip, YYYY-MM-DD
	Date string `json:"date" db:"planned_date" bson:"date"`

	OriginLat *float64 `json:"origin_lat,omitempty" db:"origin_lat" bson:"origin_lat,omitempty"`
	OriginLon *float64 `json:"origin_lon,omitempty" db:"origin_lon" bson:"origin_lon,omitempty"`
	DestLat   *float64 `json:"dest_lat,omitempty" db:"dest_lat" bson:"dest_lat,omitempty"`
	DestLon   *float64 `json:"dest_lon,omitempty" db:"dest_lon" bson:"dest_lon,omitempty"`

	CurrentLat          *float64 `json:"current_lat,omitempty" db:"current_lat" bson:"current_lat,omitempty"`
	CurrentLon          *float64 `json:"current_lon,omitempty" db:"current_lon" bson:"current_lon,omitempty"`
	LastGPSUpdate       *string  `json:"last_gps_update,omitempty" db:"last_gps_update" bson:"last_gps_update,omitempty"`
	CurrentSpeedKmh     *float64 `json:"current_speed_kmh,omitempty" db:"current_speed_kmh" bson:"current_speed_kmh,omitempty"`
	RemainingDistanceKm *float64 `json:"remaining_distance_km,omitempty" db:"remaining_distance_km" bson:"remaining_distance_km,omitempty"`
	Deviated            bool     `json:"deviated" db:"deviated" bson:"deviated"`

	CreatedAt time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`
}

// HasOrigin reports whether both origin coordinates are known
func (r *Route) HasOrigin() bool {
	return r.OriginLat != nil && r.OriginLon != nil
}

// HasDestination reports whether both destination coordinates are known
func (r *Route) HasDestination() bool {
	return r.DestLat != nil && r.DestLon != nil
}

// HasPosition reports whether the route has received at least one fix
func (r *Route) HasPosition() bool {
	return r.CurrentLat != nil && r.CurrentLon != nil
}

// RouteRequest is the payload used to plan a new route.
// Live telemetry fields are deliberately absent.
type RouteRequest struct {
	Name                string   `json:"name"`
	Origin              string   `json:"origin"`
	Destination         string   `json:"destination"`
	VehicleID           string   `json:"vehicle_id"`
	EstimatedDistanceKm *float64 `json:"estimated_distance_km"`
	Status              string   `json:"status"`
	Date                string   `json:"date"`
	OriginLat           *float64 `json:"origin_lat"`
	OriginLon           *float64 `json:"origin_lon"`
	DestLat             *float64 `json:"dest_lat"`
	DestLon             *float64 `json:"dest_lon"`
}

// RouteUpdate is the payload of the generic route update.
// CurrentLat/CurrentLon, when both present, are applied as a fix.
// Deviated is accepted on the wire for compatibility with older clients and ignored.
type RouteUpdate struct {
	Status     *string  `json:"status"`
	VehicleID  *string  `json:"vehicle_id"`
	Name       *string  `json:"name"`
	Date       *string  `json:"date"`
	CurrentLat *float64 `json:"current_lat"`
	CurrentLon *float64 `json:"current_lon"`
	Deviated   *bool    `json:"deviated"`
}

// NearbyRoute is a route whose live position lies within a search radius
type NearbyRoute struct {
	RouteID    string  `json:"route_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
}

// Float64Ptr returns a pointer to v
func Float64Ptr(v float64) *float64 {
	return &v
}

// StringPtr returns a pointer to v
func StringPtr(v string) *string {
	return &v
}

// BoolPtr returns a pointer to v
func BoolPtr(v bool) *bool {
	return &v
}
