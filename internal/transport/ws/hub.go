package ws

import (
	"encoding/json"
	"log"
	"sync"

	"mmgp/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgNotification MessageType = "notification"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans wizard notifications out to every connection watching a session
type Hub struct {
	conns map[string]map[*Connection]struct{} // sessionID -> listeners
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

// BroadcastMessage is a message for all listeners of a session
type BroadcastMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
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
			if h.conns[conn.SessionID] == nil {
				h.conns[conn.SessionID] = make(map[*Connection]struct{})
			}
			h.conns[conn.SessionID][conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("Listener connected to wizard %s", conn.SessionID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if listeners, ok := h.conns[conn.SessionID]; ok {
				if _, ok := listeners[conn]; ok {
					delete(listeners, conn)
					close(conn.Send)
					if len(listeners) == 0 {
						delete(h.conns, conn.SessionID)
					}
					log.Printf("Listener disconnected from wizard %s", conn.SessionID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionID] {
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

// Listeners returns how many connections watch a session.
func (h *Hub) Listeners(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[sessionID])
}

// Notify sends a notification to a session's listeners (implements service.Notifier)
func (h *Hub) Notify(sessionID string, n model.Notification) {
	data, _ := json.Marshal(n)
	h.broadcast <- &BroadcastMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MsgNotification,
			Payload: data,
		},
	}
}
