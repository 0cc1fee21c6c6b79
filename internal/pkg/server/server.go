package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/labstack/echo/v4"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo server until its context is cancelled
type GracefulServer struct {
	echo            *echo.Echo
	addr            string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a server listening on the configured host and port
func NewGracefulServer(e *echo.Echo, config models.ServerConfig, components *ShutdownManager) *GracefulServer {
	e.HideBanner = true
	e.HidePort = true
	if config.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(config.ReadTimeout) * time.Second
	}
	if config.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(config.WriteTimeout) * time.Second
	}

	timeout := defaultShutdownTimeout
	if config.ShutdownTimeout > 0 {
		timeout = time.Duration(config.ShutdownTimeout) * time.Second
	}
	if components == nil {
		components = NewShutdownManager()
	}

	return &GracefulServer{
		echo:            e,
		addr:            fmt.Sprintf("%s:%d", config.Host, config.Port),
		shutdownTimeout: timeout,
		components:      components,
	}
}

// Run serves HTTP until ctx is done or the listener fails, then shuts down
// the server followed by the registered components
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	case err, ok := <-errCh:
		if ok {
			serveErr = fmt.Errorf("http server failed: %w", err)
			logger.Error("HTTP server stopped unexpectedly", logger.Err(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = err
	}
	s.components.Shutdown(shutdownCtx)

	return serveErr
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *GracefulServer) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down server gracefully")

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	mu        sync.Mutex
	names     []string
	functions []func(context.Context) error
}

// NewShutdownManager creates an empty shutdown manager
func NewShutdownManager() *ShutdownManager {
	return &ShutdownManager{}
}

// Register adds a named cleanup function
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.names = append(sm.names, name)
	sm.functions = append(sm.functions, fn)
}

// Shutdown calls every cleanup function, continuing past failures, and
// returns the failed component names
func (sm *ShutdownManager) Shutdown(ctx context.Context) []string {
	sm.mu.Lock()
	names := append([]string(nil), sm.names...)
	functions := append([]func(context.Context) error(nil), sm.functions...)
	sm.mu.Unlock()

	logger.Info("Shutting down components", logger.Int("components", len(functions)))

	var failed []string
	for i := len(functions) - 1; i >= 0; i-- {
		if err := functions[i](ctx); err != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", names[i]),
				logger.Err(err))
			failed = append(failed, names[i])
		}
	}

	logger.Info("All components shutdown completed")
	return failed
}
