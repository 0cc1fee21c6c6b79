package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
)

// Health statuses
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// Checker checks a single dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is implemented by the redis, sql and mongo clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker checks a dependency through its Ping method
func PingChecker(p Pinger) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return p.Ping(ctx)
	})
}

// Report is the result of checking every registered dependency
type Report struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service,omitempty"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo is the status of one dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Service holds the dependency checkers of a process
type Service struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a checker under name, replacing any previous one
func (s *Service) AddChecker(name string, checker Checker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Names returns the registered dependency names in sorted order
func (s *Service) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckAll runs every checker concurrently and aggregates the result
func (s *Service) CheckAll(ctx context.Context) Report {
	s.mu.RLock()
	checkers := make(map[string]Checker, len(s.checkers))
	for name, c := range s.checkers {
		checkers[name] = c
	}
	s.mu.RUnlock()

	report := Report{
		Status:       StatusHealthy,
		Timestamp:    time.Now().UTC(),
		Dependencies: make(map[string]DependencyInfo, len(checkers)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range checkers {
		wg.Add(1)
		go func(name string, checker Checker) {
			defer wg.Done()

			info := DependencyInfo{Status: StatusHealthy}
			if err := checker.CheckHealth(ctx); err != nil {
				logger.Warn("Health check failed",
					logger.String("dependency", name),
					logger.Err(err))
				info = DependencyInfo{Status: StatusUnhealthy, Error: err.Error()}
			}

			mu.Lock()
			report.Dependencies[name] = info
			if info.Status != StatusHealthy {
				report.Status = StatusUnhealthy
			}
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	return report
}
