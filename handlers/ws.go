package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/nyc-taxis/dashboard/models"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsMaxMessage = 1024
)

// ConnectionGauge tracks open connections
type ConnectionGauge interface {
	Inc()
	Dec()
}

// clickMessage is a client selection; a missing regionCode means no selection
type clickMessage struct {
	RegionCode *int `json:"regionCode"`
}

func (m clickMessage) event() *models.ClickEvent {
	if m.RegionCode == nil {
		return nil
	}
	return &models.ClickEvent{RegionCode: *m.RegionCode}
}

// WebSocketHandler streams statistics views for clicks sent over a socket.
// Messages on one connection are answered in arrival order.
type WebSocketHandler struct {
	ctrl     Interactor
	gauge    ConnectionGauge
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a handler; gauge may be nil
func NewWebSocketHandler(ctrl Interactor, gauge ConnectionGauge, allowedOrigins []string) *WebSocketHandler {
	return &WebSocketHandler{
		ctrl:  ctrl,
		gauge: gauge,
		upgrader: websocket.Upgrader{
			CheckOrigin: originChecker(allowedOrigins),
		},
	}
}

// originChecker accepts same-origin requests and the configured origins
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(r *http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Serve handles GET /ws
func (h *WebSocketHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		return
	}
	defer conn.Close()

	if h.gauge != nil {
		h.gauge.Inc()
		defer h.gauge.Dec()
	}

	conn.SetReadLimit(wsMaxMessage)
	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.ping(conn, done)

	// The idle view is the initial display
	if err := h.write(conn, h.ctrl.Handle(nil)); err != nil {
		return
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg clickMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			if err := h.write(conn, ErrorResponse{
				Error:   "Invalid click event",
				Details: map[string]interface{}{"error": err.Error()},
			}); err != nil {
				return
			}
			continue
		}

		if err := h.write(conn, h.ctrl.Handle(msg.event())); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) ping(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}

func (h *WebSocketHandler) write(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(v)
}
