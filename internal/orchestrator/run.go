// Package orchestrator fans out concurrent worker units and streams their
// cumulative progress, in completion order, as a finite sequence of updates
// ending in exactly one terminal state.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cobaltline/basicd/internal/metrics"
)

// State is the aggregate progress of a run.
type State int

const (
	StateProcess State = iota + 1
	StateComplete
	StateError
	StateCompleteWithError
)

func (s State) String() string {
	switch s {
	case StateProcess:
		return "PROCESS"
	case StateComplete:
		return "COMPLETE"
	case StateError:
		return "ERROR"
	case StateCompleteWithError:
		return "COMPLETE_WITH_ERROR"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Update is one snapshot of a run. Results holds every outcome observed so
// far, in completion order. CompletedAt is zero until the terminal update,
// which is the single update whose State is not StateProcess.
type Update struct {
	RunID       string
	State       State
	StartedAt   time.Time
	CompletedAt time.Time
	Results     []Result
}

// Terminal reports whether this update closes the run.
func (u Update) Terminal() bool { return u.State != StateProcess }

// Validation errors returned by Run before any worker is launched.
var (
	ErrNegativeCount  = errors.New("worker count must not be negative")
	ErrTooManyWorkers = errors.New("worker count exceeds the configured maximum")
	ErrMissingRunner  = errors.New("orchestrator requires a runner")
)

const defaultMaxWorkers = 64

// Orchestrator launches worker units and serializes their completions into
// ordered updates. It holds no per-run state; every Run call is independent.
type Orchestrator struct {
	runner     Runner
	maxWorkers int
	logger     *zap.Logger
}

// New creates an orchestrator around a worker strategy. maxWorkers bounds
// concurrent worker creation per run; zero or negative selects the default.
func New(runner Runner, maxWorkers int, logger *zap.Logger) (*Orchestrator, error) {
	if runner == nil {
		return nil, ErrMissingRunner
	}
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{runner: runner, maxWorkers: maxWorkers, logger: logger}, nil
}

// MaxWorkers returns the per-run worker bound.
func (o *Orchestrator) MaxWorkers() int { return o.maxWorkers }

// Run validates count, then starts the run and returns its update channel.
// The sequence on the channel is: one initial StateProcess update with empty
// results, one StateProcess update per worker completion except the last,
// and exactly one terminal update carrying all results; then the channel is
// closed. A count of zero yields the terminal update alone. Cancelling ctx
// stops emission promptly and closes the channel without a terminal update;
// workers still in flight are abandoned but do not leak.
func (o *Orchestrator) Run(ctx context.Context, count int) (<-chan Update, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	if count > o.maxWorkers {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyWorkers, count, o.maxWorkers)
	}

	runID := newRunID()
	updates := make(chan Update)
	go o.collect(ctx, runID, count, updates)
	metrics.RunsStarted.Inc()
	o.logger.Info("background run started",
		zap.String("run_id", runID),
		zap.Int("workers", count),
	)
	return updates, nil
}

// collect is the single consumer of worker completions: it observes results
// in real completion order and emits each envelope exactly once.
func (o *Orchestrator) collect(ctx context.Context, runID string, count int, updates chan<- Update) {
	defer close(updates)
	startedAt := time.Now().UTC()

	if count == 0 {
		o.finalize(ctx, runID, startedAt, nil, updates)
		return
	}

	// Buffered to count so an abandoned worker's send never blocks: after
	// cancellation every in-flight worker can still deposit its result and
	// exit, and the channel is garbage collected with the run.
	completions := make(chan Result, count)
	for i := 1; i <= count; i++ {
		go func(id int) {
			completions <- o.runner.Run(ctx, id)
		}(i)
	}

	if !o.emit(ctx, updates, Update{
		RunID:     runID,
		State:     StateProcess,
		StartedAt: startedAt,
	}) {
		return
	}

	results := make([]Result, 0, count)
	for len(results) < count {
		select {
		case <-ctx.Done():
			o.logger.Info("background run canceled",
				zap.String("run_id", runID),
				zap.Int("collected", len(results)),
				zap.Int("requested", count),
			)
			metrics.RunsCanceled.Inc()
			return
		case res := <-completions:
			results = append(results, res)
			o.observeWorker(res)
			if len(results) == count {
				// The final completion is reported by the terminal
				// update, not a progress update.
				o.finalize(ctx, runID, startedAt, results, updates)
				return
			}
			if !o.emit(ctx, updates, Update{
				RunID:     runID,
				State:     StateProcess,
				StartedAt: startedAt,
				Results:   snapshot(results),
			}) {
				return
			}
		}
	}
}

// finalize computes the terminal state and emits the single terminal update.
func (o *Orchestrator) finalize(ctx context.Context, runID string, startedAt time.Time, results []Result, updates chan<- Update) {
	state := aggregateState(results)
	completedAt := time.Now().UTC()
	delivered := o.emit(ctx, updates, Update{
		RunID:       runID,
		State:       state,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
		Results:     snapshot(results),
	})
	if !delivered {
		return
	}
	metrics.RunsCompleted.WithLabelValues(state.String()).Inc()
	metrics.RunDuration.Observe(completedAt.Sub(startedAt).Seconds())
	o.logger.Info("background run finished",
		zap.String("run_id", runID),
		zap.Stringer("state", state),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", completedAt.Sub(startedAt)),
	)
}

// emit delivers one update unless the caller has gone away.
func (o *Orchestrator) emit(ctx context.Context, updates chan<- Update, u Update) bool {
	select {
	case <-ctx.Done():
		return false
	case updates <- u:
		return true
	}
}

func (o *Orchestrator) observeWorker(res Result) {
	outcome := "success"
	if res.Failed() {
		outcome = "failure"
	}
	metrics.WorkerCompletions.WithLabelValues(outcome).Inc()
}

// aggregateState folds worker outcomes into the terminal run state: all
// succeeded, all failed, or mixed. An empty run is complete by definition.
func aggregateState(results []Result) State {
	if len(results) == 0 {
		return StateComplete
	}
	failures := 0
	for _, r := range results {
		if r.Failed() {
			failures++
		}
	}
	switch failures {
	case 0:
		return StateComplete
	case len(results):
		return StateError
	default:
		return StateCompleteWithError
	}
}

func newRunID() string { return uuid.NewString() }

func snapshot(results []Result) []Result {
	if len(results) == 0 {
		return nil
	}
	out := make([]Result, len(results))
	copy(out, results)
	return out
}
