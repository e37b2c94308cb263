package ws

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles WebSocket connections
type Handler struct {
	hub           *Hub
	assessmentSvc *service.AssessmentService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, assessmentSvc *service.AssessmentService) *Handler {
	return &Handler{
		hub:           hub,
		assessmentSvc: assessmentSvc,
	}
}

// AssessmentWS handles GET /v1/ws/assessments/{id}, the progress
// stream shown on the processing page
func (h *Handler) AssessmentWS(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// The stream carries no private data, but the assessment must
	// exist before a socket is held open for it
	if _, err := h.assessmentSvc.Get(r.Context(), id); err != nil {
		http.Error(w, "assessment not found", http.StatusNotFound)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		AssessmentID: id,
		Send:         make(chan []byte, 64),
		Hub:          h.hub,
	}
	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)
}

// writePump forwards hub messages to the socket and keeps it alive
// with pings
func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case data, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := wsConn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the socket; the progress stream is one-way, so
// inbound frames only feed the keepalive
func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := wsConn.ReadMessage(); err != nil {
			return
		}
	}
}
