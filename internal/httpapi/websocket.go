package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The admin port is not exposed publicly; origin policy belongs to the
	// fronting proxy.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsReadDeadline = 60 * time.Second
	wsPingInterval = 20 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// handleWS streams run events over a WebSocket.
// GET /runs/ws?run_id=<id>[&types=a,b][&last_event_id=n]
func (h *StreamingHandler) handleWS(w http.ResponseWriter, r *http.Request) {
	runID, types, lastID := parseFeedQuery(r)
	if runID == "" {
		http.Error(w, "run_id required", http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch := h.bus.Subscribe(runID, 256)
	defer h.bus.Unsubscribe(runID, ch)

	for _, evt := range h.bus.ReplaySince(runID, lastID) {
		if !wanted(types, evt) {
			continue
		}
		if err := conn.WriteJSON(evt); err != nil {
			return
		}
	}

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	// Reader pump: client messages are discarded, but reading keeps pong
	// handling alive and notices closes.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Debug("WebSocket client disconnected", zap.String("run_id", runID))
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			if !wanted(types, evt) {
				continue
			}
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
		}
	}
}
