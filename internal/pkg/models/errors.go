package models

import "errors"

var (
	// ErrRouteNotFound is returned when a route id does not exist
	ErrRouteNotFound = errors.New("route not found")
	// ErrInvalidFix is returned for fixes with out of range or non-finite coordinates
	ErrInvalidFix = errors.New("invalid fix: latitude must be in [-90,90] and longitude in [-180,180]")
	// ErrNoPosition is returned when a route has not received any fix yet
	ErrNoPosition = errors.New("route has no live position")
	// ErrInvalidRoute is returned for malformed route planning requests
	ErrInvalidRoute = errors.New("invalid route")
	// ErrInvalidQuery is returned for malformed search parameters
	ErrInvalidQuery = errors.New("invalid query")
)
