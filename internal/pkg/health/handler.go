package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	readyTimeout    = 3 * time.Second
	detailedTimeout = 5 * time.Second
)

// BuildInfo describes the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo is overridden by VERSION, GIT_COMMIT and BUILD_TIME
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

func buildInfoFor(serviceName string) BuildInfo {
	info := DefaultBuildInfo
	info.ServiceName = serviceName

	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	} else {
		info.Hostname = "unknown"
	}
	if v := os.Getenv("VERSION"); v != "" {
		info.Version = v
	}
	if v := os.Getenv("GIT_COMMIT"); v != "" {
		info.GitCommit = v
	}
	if v := os.Getenv("BUILD_TIME"); v != "" {
		info.BuildTime = v
	}
	return info
}

// NewPingHandler returns the build information of the service
func NewPingHandler(serviceName string) echo.HandlerFunc {
	info := buildInfoFor(serviceName)

	return func(c echo.Context) error {
		resp := info
		resp.ServerTime = time.Now().UTC()
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterEndpoints registers liveness, readiness and dependency endpoints.
// /health and /healthz never touch dependencies; /ready and /health/detailed do.
func RegisterEndpoints(e *echo.Echo, serviceName string, svc *Service) {
	e.GET("/ping", NewPingHandler(serviceName))

	live := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
		defer cancel()

		report := svc.CheckAll(ctx)
		report.Service = serviceName
		if report.Status != StatusHealthy {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ready",
			"service": serviceName,
		})
	})

	e.GET("/health/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), detailedTimeout)
		defer cancel()

		report := svc.CheckAll(ctx)
		report.Service = serviceName
		report.Version = buildInfoFor(serviceName).Version

		code := http.StatusOK
		if report.Status != StatusHealthy {
			code = http.StatusServiceUnavailable
		}
		return c.JSON(code, report)
	})
}
