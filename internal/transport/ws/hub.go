package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAnalysisProgress MessageType = "analysis_progress"
	MsgAnalysisComplete MessageType = "analysis_complete"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ProgressPayload reports one deep-analysis step
type ProgressPayload struct {
	Step    string `json:"step"`
	Percent int    `json:"percent"`
}

// Hub manages the progress-stream connections for assessments. An
// assessment can have multiple watchers (the processing page open in
// several tabs).
type Hub struct {
	conns map[string]map[*Connection]bool // assessmentID -> connections

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents one WebSocket watcher
type Connection struct {
	AssessmentID string
	Send         chan []byte
	Hub          *Hub
}

// BroadcastMessage is a message for every watcher of one assessment
type BroadcastMessage struct {
	AssessmentID string
	Message      *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.AssessmentID] == nil {
				h.conns[conn.AssessmentID] = make(map[*Connection]bool)
			}
			h.conns[conn.AssessmentID][conn] = true
			h.mu.Unlock()
			log.Printf("Watcher connected for assessment %s", conn.AssessmentID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if watchers, ok := h.conns[conn.AssessmentID]; ok && watchers[conn] {
				delete(watchers, conn)
				close(conn.Send)
				if len(watchers) == 0 {
					delete(h.conns, conn.AssessmentID)
				}
				log.Printf("Watcher disconnected from assessment %s", conn.AssessmentID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.AssessmentID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

func (h *Hub) send(assessmentID string, msgType MessageType, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AssessmentID: assessmentID,
		Message: &Message{
			Type:    msgType,
			Payload: data,
		},
	}
}

// NotifyProgress implements service.Notifier
func (h *Hub) NotifyProgress(assessmentID, step string, percent int) {
	h.send(assessmentID, MsgAnalysisProgress, ProgressPayload{Step: step, Percent: percent})
}

// NotifyComplete implements service.Notifier
func (h *Hub) NotifyComplete(assessmentID string) {
	h.send(assessmentID, MsgAnalysisComplete, ProgressPayload{Step: "done", Percent: 100})
}

// NotifyError implements service.Notifier
func (h *Hub) NotifyError(assessmentID, message string) {
	h.send(assessmentID, MsgError, map[string]string{"message": message})
}
