package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRetrier() *retry.Retrier {
	return retry.New(retry.Config{
		MaxRetries:    3,
		BaseDelay:     time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		Multiplier:    2,
		RetryableFunc: retry.NetworkRetryableFunc(),
	})
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("http://localhost:8080/", 0, nil)

	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.HTTPClient.Timeout)
	assert.NotNil(t, c.retrier)
}

func TestClient_PutJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/routes/route-1/position", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 40.4168, body["latitude"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":"route-1","current_speed_kmh":42.5}}`))
	}))
	defer server.Close()

	var out struct {
		ID    string  `json:"id"`
		Speed float64 `json:"current_speed_kmh"`
	}
	err := NewClient(server.URL, time.Second, testRetrier()).
		PutJSON(context.Background(), "/api/routes/route-1/position", map[string]float64{"latitude": 40.4168, "longitude": -3.7038}, &out)

	require.NoError(t, err)
	assert.Equal(t, "route-1", out.ID)
	assert.Equal(t, 42.5, out.Speed)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, time.Second, testRetrier()).
		PutJSON(context.Background(), "/api/routes/route-1/position", map[string]float64{"latitude": 1, "longitude": 2}, nil)

	assert.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"route not found","code":404}`))
	}))
	defer server.Close()

	err := NewClient(server.URL, time.Second, testRetrier()).
		PutJSON(context.Background(), "/api/routes/missing/position", map[string]float64{"latitude": 1}, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, "route not found", httpErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
