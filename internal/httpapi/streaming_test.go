package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cobaltline/basicd/internal/streaming"
)

func seedBus(bus *streaming.Manager, runID string) {
	bus.Publish(runID, streaming.Event{RunID: runID, Type: streaming.TypeRunStarted, Requested: 2, Timestamp: time.Now().UTC()})
	bus.Publish(runID, streaming.Event{RunID: runID, Type: streaming.TypeWorkerCompleted, Completed: 1, Requested: 2, Timestamp: time.Now().UTC()})
	bus.Publish(runID, streaming.Event{RunID: runID, Type: streaming.TypeRunFinished, State: "COMPLETE", Completed: 2, Requested: 2, Timestamp: time.Now().UTC()})
}


// syncRecorder is a flushable ResponseWriter safe to read while the handler
// goroutine is still writing.
type syncRecorder struct {
	mu     sync.Mutex
	header http.Header
	buf    bytes.Buffer
	code   int
}

func newSyncRecorder() *syncRecorder {
	return &syncRecorder{header: make(http.Header), code: http.StatusOK}
}

func (r *syncRecorder) Header() http.Header { return r.header }
func (r *syncRecorder) Flush()              {}

func (r *syncRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(b)
}

func (r *syncRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.code = code
}

func (r *syncRecorder) Body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

func TestSSERequiresRunID(t *testing.T) {
	h := NewStreamingHandler(streaming.NewManager(8), zap.NewNop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/sse", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSSEReplaysRetainedEvents(t *testing.T) {
	bus := streaming.NewManager(8)
	seedBus(bus, "run-1")

	h := NewStreamingHandler(bus, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/runs/sse?run_id=run-1", nil).WithContext(ctx)
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		h.handleSSE(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(rec.Body(), "RUN_FINISHED")
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	body := rec.Body()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, ": connected to run run-1")
	assert.Contains(t, body, "id: 1\nevent: RUN_STARTED\n")
	assert.Contains(t, body, "id: 3\nevent: RUN_FINISHED\n")
	assert.Contains(t, body, `"state":"COMPLETE"`)
}

func TestSSEHonorsReplayCursorAndTypeFilter(t *testing.T) {
	bus := streaming.NewManager(8)
	seedBus(bus, "run-1")

	h := NewStreamingHandler(bus, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/runs/sse?run_id=run-1&types=RUN_FINISHED", nil).WithContext(ctx)
	req.Header.Set("Last-Event-ID", "1")
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		h.handleSSE(rec, req)
		close(done)
	}()
	require.Eventually(t, func() bool {
		return strings.Contains(rec.Body(), "RUN_FINISHED")
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done

	body := rec.Body()
	assert.NotContains(t, body, "RUN_STARTED")
	assert.NotContains(t, body, "WORKER_COMPLETED")
	assert.Contains(t, body, "RUN_FINISHED")
}

func TestSSEDeliversLiveEvents(t *testing.T) {
	bus := streaming.NewManager(8)
	h := NewStreamingHandler(bus, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/runs/sse?run_id=run-1", nil).WithContext(ctx)
	rec := newSyncRecorder()

	done := make(chan struct{})
	go func() {
		h.handleSSE(rec, req)
		close(done)
	}()

	// Wait for the subscription before publishing.
	require.Eventually(t, func() bool {
		return strings.Contains(rec.Body(), ": connected")
	}, 2*time.Second, 10*time.Millisecond)

	bus.Publish("run-1", streaming.Event{RunID: "run-1", Type: streaming.TypeRunStarted, Timestamp: time.Now().UTC()})

	require.Eventually(t, func() bool {
		return strings.Contains(rec.Body(), "RUN_STARTED")
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	<-done
}

func TestWebSocketFeed(t *testing.T) {
	bus := streaming.NewManager(8)
	seedBus(bus, "run-1")

	h := NewStreamingHandler(bus, zap.NewNop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/runs/ws?run_id=run-1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	defer resp.Body.Close()

	var evts []streaming.Event
	for i := 0; i < 3; i++ {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var evt streaming.Event
		require.NoError(t, conn.ReadJSON(&evt))
		evts = append(evts, evt)
	}
	assert.Equal(t, streaming.TypeRunStarted, evts[0].Type)
	assert.Equal(t, streaming.TypeRunFinished, evts[2].Type)
	assert.Equal(t, "COMPLETE", evts[2].State)
}

func TestWebSocketRequiresRunID(t *testing.T) {
	h := NewStreamingHandler(streaming.NewManager(8), zap.NewNop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/runs/ws", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
