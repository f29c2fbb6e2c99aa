// Package streaming provides an in-memory pub/sub bus for background-run
// events, with a per-run ring buffer so late observers can replay what they
// missed. The gRPC surface does not depend on this bus; it feeds the admin
// SSE/WebSocket observers only.
package streaming

import (
	"encoding/json"
	"sync"
	"time"
)

// Event types published over the bus.
const (
	TypeRunStarted      = "RUN_STARTED"
	TypeWorkerCompleted = "WORKER_COMPLETED"
	TypeRunFinished     = "RUN_FINISHED"
	TypeRunCanceled     = "RUN_CANCELED"
)

// Event is one observable moment of a background run.
type Event struct {
	RunID     string    `json:"run_id"`
	Type      string    `json:"type"`
	State     string    `json:"state,omitempty"`
	Completed int       `json:"completed"`
	Requested int       `json:"requested"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Seq       uint64    `json:"seq"`
}

// Marshal returns the JSON form used by SSE frames and WS messages.
func (e Event) Marshal() []byte {
	b, _ := json.Marshal(e)
	return b
}

// Manager fans events out to run subscribers and retains a bounded history
// per run for replay.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	history     map[string]*ring
	capacity    int
}

const defaultCapacity = 256

// NewManager creates a bus whose per-run replay rings hold capacity events;
// non-positive capacity selects the default.
func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Manager{
		subscribers: make(map[string]map[chan Event]struct{}),
		history:     make(map[string]*ring),
		capacity:    capacity,
	}
}

// Subscribe registers a buffered channel for a run's events; the caller must
// drain it and call Unsubscribe when done.
func (m *Manager) Subscribe(runID string, buffer int) chan Event {
	ch := make(chan Event, buffer)
	m.mu.Lock()
	defer m.mu.Unlock()
	subs := m.subscribers[runID]
	if subs == nil {
		subs = make(map[chan Event]struct{})
		m.subscribers[runID] = subs
	}
	subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (m *Manager) Unsubscribe(runID string, ch chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if subs, ok := m.subscribers[runID]; ok {
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(m.subscribers, runID)
		}
	}
}

// Publish assigns the event its sequence number, records it in the run's
// ring, and delivers it to all subscribers without blocking; slow
// subscribers drop events rather than stalling the publisher.
func (m *Manager) Publish(runID string, evt Event) {
	m.mu.Lock()
	rg := m.history[runID]
	if rg == nil {
		rg = newRing(m.capacity)
		m.history[runID] = rg
	}
	evt.Seq = rg.nextSeq
	rg.nextSeq++
	rg.push(evt)
	subs := m.subscribers[runID]
	m.mu.Unlock()

	for ch := range subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

// ReplaySince returns retained events with Seq > since, oldest first,
// best-effort within ring capacity. The lock is held across the ring read
// because Publish mutates the ring in place.
func (m *Manager) ReplaySince(runID string, since uint64) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rg := m.history[runID]
	if rg == nil {
		return nil
	}
	return rg.since(since)
}

// Forget drops a run's retained history once it can no longer be observed.
func (m *Manager) Forget(runID string) {
	m.mu.Lock()
	delete(m.history, runID)
	m.mu.Unlock()
}

// ring is a fixed-capacity ring buffer of events.
type ring struct {
	buf     []Event
	start   int
	count   int
	nextSeq uint64
}

// Sequences start at 1 so a replay cursor of 0 means "everything retained",
// matching the SSE Last-Event-ID convention.
func newRing(capacity int) *ring { return &ring{buf: make([]Event, capacity), nextSeq: 1} }

func (r *ring) push(e Event) {
	if len(r.buf) == 0 {
		return
	}
	if r.count < len(r.buf) {
		r.buf[(r.start+r.count)%len(r.buf)] = e
		r.count++
		return
	}
	r.buf[r.start] = e
	r.start = (r.start + 1) % len(r.buf)
}

func (r *ring) since(seq uint64) []Event {
	if r.count == 0 {
		return nil
	}
	out := make([]Event, 0, r.count)
	for i := 0; i < r.count; i++ {
		ev := r.buf[(r.start+i)%len(r.buf)]
		if ev.Seq > seq {
			out = append(out, ev)
		}
	}
	return out
}
