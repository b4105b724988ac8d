package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/logger"
)

// BuildInfo contains information about the running binary
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker reports whether one dependency is usable. database.PostgresClient,
// database.RedisClient and nats.Client all satisfy it.
type Checker interface {
	Ping(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Response is the body of /health and a failing /ready
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// Service runs dependency checks
type Service struct {
	service  string
	version  string
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewService creates a health service for the named binary
func NewService(serviceName, version string) *Service {
	return &Service{
		service:  serviceName,
		version:  version,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a dependency check. A nil checker is ignored.
func (s *Service) AddChecker(name string, checker Checker) {
	if checker == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers[name] = checker
}

// Check runs every registered check concurrently
func (s *Service) Check(ctx context.Context) Response {
	s.mu.RLock()
	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	s.mu.RUnlock()
	sort.Strings(names)

	results := make([]DependencyInfo, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		s.mu.RLock()
		checker := s.checkers[name]
		s.mu.RUnlock()

		wg.Add(1)
		go func(i int, name string, checker Checker) {
			defer wg.Done()
			if err := checker.Ping(ctx); err != nil {
				logger.Error("Health check failed", logger.String("dependency", name), logger.Err(err))
				results[i] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
				return
			}
			results[i] = DependencyInfo{Status: "healthy"}
		}(i, name, checker)
	}
	wg.Wait()

	resp := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Service:      s.service,
		Version:      s.version,
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}
	for i, name := range names {
		resp.Dependencies[name] = results[i]
		if results[i].Status != "healthy" {
			resp.Status = "unhealthy"
		}
	}
	return resp
}

func (s *Service) pingHandler() echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, BuildInfo{
			Version:     s.version,
			ServiceName: s.service,
			GoVersion:   runtime.Version(),
			Hostname:    hostname,
			ServerTime:  time.Now(),
		})
	}
}

func (s *Service) checkHandler(timeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		resp := s.Check(ctx)
		if resp.Status != "healthy" {
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// RegisterEndpoints mounts /ping, /health, /healthz and /ready
func RegisterEndpoints(e *echo.Echo, s *Service) {
	e.GET("/ping", s.pingHandler())

	// liveness never touches dependencies
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health", s.checkHandler(5*time.Second))
	e.GET("/ready", s.checkHandler(3*time.Second))
}
