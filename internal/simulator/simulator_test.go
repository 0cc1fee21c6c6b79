package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	telemetryhttp "github.com/ecofleet/fleet-telemetry/internal/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioYAML = `
base_url: http://localhost:8080
interval: 250ms
routes:
  - route_id: madrid-toledo
    steps_per_leg: 4
    waypoints:
      - {lat: 40.4168, lon: -3.7038}
      - {lat: 39.8628, lon: -4.0273}
  - route_id: short-hop
    waypoints:
      - {lat: 1, lon: 1}
`

func TestParseScenario(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", s.BaseURL)
	assert.Equal(t, 250*time.Millisecond, s.Interval)
	require.Len(t, s.Routes, 2)
	assert.Equal(t, 4, s.Routes[0].StepsPerLeg)
	assert.Equal(t, defaultStepsPerLeg, s.Routes[1].StepsPerLeg)
	assert.Equal(t, Waypoint{Lat: 39.8628, Lon: -4.0273}, s.Routes[0].Waypoints[1])
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing base url":   "routes: [{route_id: a, waypoints: [{lat: 1, lon: 1}]}]",
		"no routes":          "base_url: http://x",
		"missing route id":   "base_url: http://x\nroutes: [{waypoints: [{lat: 1, lon: 1}]}]",
		"no waypoints":       "base_url: http://x\nroutes: [{route_id: a}]",
		"waypoint off globe": "base_url: http://x\nroutes: [{route_id: a, waypoints: [{lat: 91, lon: 1}]}]",
		"malformed":          "base_url: [",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScenario([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseScenario_DefaultInterval(t *testing.T) {
	s, err := ParseScenario([]byte("base_url: http://x\nroutes: [{route_id: a, waypoints: [{lat: 1, lon: 1}]}]"))
	require.NoError(t, err)
	assert.Equal(t, defaultInterval, s.Interval)
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o600))

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, s.Routes, 2)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInterpolate(t *testing.T) {
	points := Interpolate([]Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}}, 2)

	assert.Equal(t, []Waypoint{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.5},
		{Lat: 0, Lon: 1},
		{Lat: 0.5, Lon: 1},
		{Lat: 1, Lon: 1},
	}, points)

	assert.Equal(t, []Waypoint{{Lat: 3, Lon: 4}}, Interpolate([]Waypoint{{Lat: 3, Lon: 4}}, 5))
	assert.Nil(t, Interpolate(nil, 3))
	assert.Len(t, Interpolate([]Waypoint{{}, {Lat: 1}}, 0), 2)
}

func TestInterpolate_CrossesAntimeridian(t *testing.T) {
	points := Interpolate([]Waypoint{{Lat: 10, Lon: 179}, {Lat: 12, Lon: -179}}, 4)

	expectedLons := []float64{179, 179.5, -180, -179.5, -179}
	require.Len(t, points, len(expectedLons))
	for i, lon := range expectedLons {
		assert.InDelta(t, lon, points[i].Lon, 1e-9, "point %d", i)
		assert.InDelta(t, 10+0.5*float64(i), points[i].Lat, 1e-9, "point %d", i)
	}

	westward := Interpolate([]Waypoint{{Lat: 0, Lon: -170}, {Lat: 0, Lon: 170}}, 2)
	assert.InDelta(t, -180, westward[1].Lon, 1e-9)
}

type recordingClient struct {
	mu    sync.Mutex
	paths map[string]int
	fail  string
}

func (c *recordingClient) PutJSON(_ context.Context, path string, _, _ interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paths == nil {
		c.paths = make(map[string]int)
	}
	c.paths[path]++
	if c.fail != "" && strings.Contains(path, c.fail) {
		return errors.New("route not found")
	}
	return nil
}

func TestRun(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)
	s.Interval = time.Millisecond

	client := &recordingClient{fail: "short-hop"}
	results := Run(context.Background(), s, client)

	require.Len(t, results, 2)
	assert.Equal(t, Result{RouteID: "madrid-toledo", Sent: 5}, results[0])
	assert.Equal(t, Result{RouteID: "short-hop", Failed: 1}, results[1])
	assert.Equal(t, 5, client.paths["/api/routes/madrid-toledo/position"])
}

func TestRun_Cancelled(t *testing.T) {
	s, err := ParseScenario([]byte(scenarioYAML))
	require.NoError(t, err)
	s.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	results := Run(ctx, s, &recordingClient{})

	assert.Equal(t, 1, results[0].Sent)
	assert.Equal(t, 1, results[1].Sent)
}

func TestRun_AgainstHTTPServer(t *testing.T) {
	var mu sync.Mutex
	var received []Waypoint
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		mu.Lock()
		received = append(received, Waypoint{Lat: body.Latitude, Lon: body.Longitude})
		mu.Unlock()
		w.Write([]byte(`{"success":true,"data":{"current_speed_kmh":12.5,"deviated":false}}`))
	}))
	defer server.Close()

	s := &Scenario{
		BaseURL:  server.URL,
		Interval: time.Millisecond,
		Routes: []RouteScenario{{
			RouteID:     "route-1",
			StepsPerLeg: 2,
			Waypoints:   []Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}},
		}},
	}

	results := Run(context.Background(), s, telemetryhttp.NewClient(s.BaseURL, time.Second, nil))

	assert.Equal(t, 3, results[0].Sent)
	assert.Equal(t, []Waypoint{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.5}, {Lat: 0, Lon: 1}}, received)
}
