package health

import (
	"context"
	"runtime"
	"time"
)

// FlagChecker reports a readiness flag flipped by its owner, typically the
// gRPC listener once it is serving.
type FlagChecker struct {
	name     string
	critical bool
	ready    func() bool
}

// NewFlagChecker wraps a readiness probe function.
func NewFlagChecker(name string, critical bool, ready func() bool) *FlagChecker {
	return &FlagChecker{name: name, critical: critical, ready: ready}
}

func (c *FlagChecker) Name() string     { return c.name }
func (c *FlagChecker) IsCritical() bool { return c.critical }

func (c *FlagChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	res := CheckResult{Timestamp: start.UTC()}
	if c.ready() {
		res.Status = StatusHealthy
		res.Message = "ready"
	} else {
		res.Status = StatusUnhealthy
		res.Error = "not ready"
	}
	res.Duration = time.Since(start)
	return res
}

// GoroutineChecker degrades when the goroutine count exceeds a threshold,
// which on this service usually means leaked conversation or run streams.
type GoroutineChecker struct {
	threshold int
}

func NewGoroutineChecker(threshold int) *GoroutineChecker {
	if threshold <= 0 {
		threshold = 10000
	}
	return &GoroutineChecker{threshold: threshold}
}

func (c *GoroutineChecker) Name() string     { return "goroutines" }
func (c *GoroutineChecker) IsCritical() bool { return false }

func (c *GoroutineChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	n := runtime.NumGoroutine()
	res := CheckResult{Timestamp: start.UTC(), Duration: time.Since(start)}
	if n > c.threshold {
		res.Status = StatusDegraded
		res.Error = "goroutine count above threshold"
	} else {
		res.Status = StatusHealthy
	}
	return res
}
