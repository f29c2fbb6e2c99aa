// Package health runs periodic component checks and serves probe endpoints
// on the admin HTTP server.
package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status is the outcome of one check or of the service overall.
type Status int

const (
	StatusHealthy Status = iota
	StatusDegraded
	StatusUnhealthy
	StatusUnknown
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusDegraded:
		return "degraded"
	case StatusUnhealthy:
		return "unhealthy"
	default:
		return "unknown"
	}
}

// CheckResult is one component's health at a point in time.
type CheckResult struct {
	Component string        `json:"component"`
	Status    Status        `json:"-"`
	StatusTxt string        `json:"status"`
	Message   string        `json:"message,omitempty"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
	Critical  bool          `json:"critical"`
}

// Checker is one component health probe.
type Checker interface {
	// Name uniquely identifies the component.
	Name() string
	// Check reports the component's current health.
	Check(ctx context.Context) CheckResult
	// IsCritical marks checks whose failure makes the whole service
	// unhealthy rather than degraded.
	IsCritical() bool
}

// Overall is the folded service health.
type Overall struct {
	Status     Status                 `json:"-"`
	StatusTxt  string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Components map[string]CheckResult `json:"components"`
}

// Manager runs registered checks on a fixed interval and caches the latest
// results for the probe handlers.
type Manager struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	results  map[string]CheckResult
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	started  bool
	logger   *zap.Logger
}

// NewManager creates a manager checking every interval; non-positive
// intervals select 30s.
func NewManager(interval time.Duration, logger *zap.Logger) *Manager {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		checkers: make(map[string]Checker),
		results:  make(map[string]CheckResult),
		interval: interval,
		timeout:  5 * time.Second,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

// Register adds a checker. Registering after Start is allowed; the next
// sweep picks it up.
func (m *Manager) Register(c Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkers[c.Name()] = c
}

// Start runs one immediate sweep, then sweeps on the interval until Stop.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()

	m.sweep(ctx)
	go m.loop(ctx)
}

// Stop ends background checking.
func (m *Manager) Stop() {
	close(m.stopCh)
}

func (m *Manager) loop(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Manager) sweep(ctx context.Context) {
	m.mu.RLock()
	checkers := make([]Checker, 0, len(m.checkers))
	for _, c := range m.checkers {
		checkers = append(checkers, c)
	}
	m.mu.RUnlock()

	for _, c := range checkers {
		cctx, cancel := context.WithTimeout(ctx, m.timeout)
		res := c.Check(cctx)
		cancel()
		res.Component = c.Name()
		res.Critical = c.IsCritical()
		res.StatusTxt = res.Status.String()
		if res.Timestamp.IsZero() {
			res.Timestamp = time.Now().UTC()
		}
		if res.Status != StatusHealthy {
			m.logger.Warn("health check not healthy",
				zap.String("component", c.Name()),
				zap.Stringer("status", res.Status),
				zap.String("error", res.Error),
			)
		}
		m.mu.Lock()
		m.results[c.Name()] = res
		m.mu.Unlock()
	}
}

// OverallHealth folds the cached results: any critical failure is unhealthy,
// any non-critical failure degrades, otherwise healthy.
func (m *Manager) OverallHealth() Overall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := Overall{
		Status:     StatusHealthy,
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]CheckResult, len(m.results)),
	}
	for name, res := range m.results {
		out.Components[name] = res
		if res.Status == StatusHealthy {
			continue
		}
		if res.Critical {
			out.Status = StatusUnhealthy
		} else if out.Status == StatusHealthy {
			out.Status = StatusDegraded
		}
	}
	out.StatusTxt = out.Status.String()
	return out
}

// Ready reports whether the service should receive traffic.
func (m *Manager) Ready() bool {
	return m.OverallHealth().Status != StatusUnhealthy
}
