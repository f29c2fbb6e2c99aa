package orchestrator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// Result is one worker outcome, immutable once produced. Err is nil for a
// success; a failed worker carries its reason in Err and never aborts the
// run it belongs to.
type Result struct {
	ID          string
	Name        string
	Payload     string
	Err         error
	CompletedAt time.Time
}

// Failed reports whether this result is a failure outcome.
func (r Result) Failed() bool { return r.Err != nil }

// Runner produces the outcome of a single worker unit. Implementations must
// be safe for concurrent use: the orchestrator invokes Run from one goroutine
// per worker. Run should honor ctx and return early with a failure outcome
// when it is canceled.
type Runner interface {
	Run(ctx context.Context, workerID int) Result
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, workerID int) Result

func (f RunnerFunc) Run(ctx context.Context, workerID int) Result { return f(ctx, workerID) }

// SimConfig bounds the simulated service call.
type SimConfig struct {
	MinLatency  time.Duration `mapstructure:"min_latency"`
	MaxLatency  time.Duration `mapstructure:"max_latency"`
	FailureRate float64       `mapstructure:"failure_rate"`
}

// protocols a simulated worker pretends to call a downstream service over.
var protocols = []string{
	"rest", "grpc", "rpc", "ws", "mqtt", "amqp", "graphql", "sql", "file",
}

// SimRunner simulates a downstream service call with bounded random latency
// and an optional failure rate. It performs no real work.
type SimRunner struct {
	cfg SimConfig
}

// NewSimRunner applies defaults for unset bounds: 1-3s latency, no failures.
func NewSimRunner(cfg SimConfig) *SimRunner {
	if cfg.MinLatency <= 0 {
		cfg.MinLatency = time.Second
	}
	if cfg.MaxLatency <= 0 {
		cfg.MaxLatency = 3 * time.Second
	}
	if cfg.MaxLatency < cfg.MinLatency {
		cfg.MaxLatency = cfg.MinLatency
	}
	if cfg.FailureRate < 0 {
		cfg.FailureRate = 0
	}
	if cfg.FailureRate > 1 {
		cfg.FailureRate = 1
	}
	return &SimRunner{cfg: cfg}
}

// Run sleeps for a random duration within the configured bounds and returns
// a simulated outcome. Cancellation cuts the sleep short and yields a
// failure outcome carrying the context error.
func (s *SimRunner) Run(ctx context.Context, workerID int) Result {
	name := fmt.Sprintf("service-%d", workerID)
	delay := s.cfg.MinLatency
	if span := s.cfg.MaxLatency - s.cfg.MinLatency; span > 0 {
		delay += rand.N(span)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Result{
			ID:          uuid.NewString(),
			Name:        name,
			Err:         ctx.Err(),
			CompletedAt: time.Now().UTC(),
		}
	case <-timer.C:
	}

	res := Result{
		ID:          uuid.NewString(),
		Name:        name,
		CompletedAt: time.Now().UTC(),
	}
	protocol := protocols[rand.IntN(len(protocols))]
	if s.cfg.FailureRate > 0 && rand.Float64() < s.cfg.FailureRate {
		res.Err = fmt.Errorf("simulated %s call failed", protocol)
		return res
	}
	res.Payload = protocol
	return res
}
