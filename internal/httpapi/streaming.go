// Package httpapi serves the admin-side observation endpoints: SSE and
// WebSocket feeds of background-run events.
package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cobaltline/basicd/internal/streaming"
)

// StreamingHandler serves run events over SSE and WebSocket.
type StreamingHandler struct {
	bus    *streaming.Manager
	logger *zap.Logger

	heartbeat time.Duration
}

func NewStreamingHandler(bus *streaming.Manager, logger *zap.Logger) *StreamingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamingHandler{bus: bus, logger: logger, heartbeat: 15 * time.Second}
}

// RegisterRoutes mounts the event feed endpoints on mux.
func (h *StreamingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/runs/sse", h.handleSSE)
	mux.HandleFunc("/runs/ws", h.handleWS)
}

// parseFeedQuery extracts the run id, optional type filter, and replay
// cursor shared by both endpoints. Last-Event-ID follows the SSE reconnect
// convention; last_event_id serves WebSocket clients.
func parseFeedQuery(r *http.Request) (runID string, types map[string]struct{}, lastID uint64) {
	runID = r.URL.Query().Get("run_id")
	if s := r.URL.Query().Get("types"); s != "" {
		types = make(map[string]struct{})
		for _, t := range strings.Split(s, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types[t] = struct{}{}
			}
		}
	}
	if lei := r.Header.Get("Last-Event-ID"); lei != "" {
		if n, err := strconv.ParseUint(lei, 10, 64); err == nil {
			lastID = n
		}
	}
	if q := r.URL.Query().Get("last_event_id"); q != "" && lastID == 0 {
		if n, err := strconv.ParseUint(q, 10, 64); err == nil {
			lastID = n
		}
	}
	return runID, types, lastID
}

func wanted(types map[string]struct{}, evt streaming.Event) bool {
	if len(types) == 0 {
		return true
	}
	_, ok := types[evt.Type]
	return ok
}

// handleSSE streams run events as Server-Sent Events.
// GET /runs/sse?run_id=<id>[&types=a,b][&last_event_id=n]
func (h *StreamingHandler) handleSSE(w http.ResponseWriter, r *http.Request) {
	runID, types, lastID := parseFeedQuery(r)
	if runID == "" {
		http.Error(w, `{"error":"run_id required"}`, http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")

	ch := h.bus.Subscribe(runID, 256)
	defer h.bus.Unsubscribe(runID, ch)

	fmt.Fprintf(w, ": connected to run %s\n\n", runID)
	flusher.Flush()

	for _, evt := range h.bus.ReplaySince(runID, lastID) {
		if wanted(types, evt) {
			writeSSE(w, evt)
		}
	}
	flusher.Flush()

	hb := time.NewTicker(h.heartbeat)
	defer hb.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("SSE client disconnected", zap.String("run_id", runID))
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			if wanted(types, evt) {
				writeSSE(w, evt)
				flusher.Flush()
			}
		case <-hb.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, evt streaming.Event) {
	fmt.Fprintf(w, "id: %d\n", evt.Seq)
	if evt.Type != "" {
		fmt.Fprintf(w, "event: %s\n", evt.Type)
	}
	fmt.Fprintf(w, "data: %s\n\n", evt.Marshal())
}
