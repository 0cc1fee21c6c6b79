package simulator

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultInterval    = time.Second
	defaultStepsPerLeg = 10
)

// Waypoint is a coordinate the simulated vehicle passes through
type Waypoint struct {
	Lat float64 `yaml:"lat" json:"latitude"`
	Lon float64 `yaml:"lon" json:"longitude"`
}

// RouteScenario describes the path replayed for one route
type RouteScenario struct {
	RouteID     string     `yaml:"route_id"`
	StepsPerLeg int        `yaml:"steps_per_leg"`
	Waypoints   []Waypoint `yaml:"waypoints"`
}

// Scenario is the simulator input file
type Scenario struct {
	BaseURL  string          `yaml:"base_url"`
	Interval time.Duration   `yaml:"interval"`
	Routes   []RouteScenario `yaml:"routes"`
}

// LoadScenario reads and validates a YAML scenario file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario and fills defaults
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if s.BaseURL == "" {
		return nil, errors.New("scenario base_url is required")
	}
	if s.Interval <= 0 {
		s.Interval = defaultInterval
	}
	if len(s.Routes) == 0 {
		return nil, errors.New("scenario has no routes")
	}

	for i := range s.Routes {
		r := &s.Routes[i]
		if r.RouteID == "" {
			return nil, fmt.Errorf("route %d: route_id is required", i)
		}
		if len(r.Waypoints) == 0 {
			return nil, fmt.Errorf("route %s: at least one waypoint is required", r.RouteID)
		}
		for _, wp := range r.Waypoints {
			if wp.Lat < -90 || wp.Lat > 90 || wp.Lon < -180 || wp.Lon > 180 {
				return nil, fmt.Errorf("route %s: waypoint (%v, %v) out of range", r.RouteID, wp.Lat, wp.Lon)
			}
		}
		if r.StepsPerLeg <= 0 {
			r.StepsPerLeg = defaultStepsPerLeg
		}
	}

	return &s, nil
}

// Interpolate expands waypoints into evenly spaced points, steps per leg,
// ending exactly on the last waypoint
func Interpolate(waypoints []Waypoint, steps int) []Waypoint {
	if len(waypoints) == 0 {
		return nil
	}
	if steps < 1 {
		steps = 1
	}

	points := make([]Waypoint, 0, (len(waypoints)-1)*steps+1)
	for i := 0; i < len(waypoints)-1; i++ {
		from, to := waypoints[i], waypoints[i+1]
		// shortest way round, so 179 -> -179 crosses the antimeridian
		dLon := normalizeLon(to.Lon - from.Lon)
		for s := 0; s < steps; s++ {
			f := float64(s) / float64(steps)
			points = append(points, Waypoint{
				Lat: from.Lat + (to.Lat-from.Lat)*f,
				Lon: normalizeLon(from.Lon + dLon*f),
			})
		}
	}
	return append(points, waypoints[len(waypoints)-1])
}

// normalizeLon wraps a longitude or longitude delta into [-180, 180)
func normalizeLon(lon float64) float64 {
	return math.Mod(math.Mod(lon+180, 360)+360, 360) - 180
}
