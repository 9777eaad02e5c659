package brackets

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketMessage is the envelope pushed to spectator UIs.
type WebSocketMessage struct {
	Type    string      `json:"type"` // e.g. "MATCH_STARTED", "ANSWER_SUBMITTED"
	Payload interface{} `json:"payload"`
}

const (
	EventBracketGenerated   = "BRACKET_GENERATED"
	EventMatchStarted       = "MATCH_STARTED"
	EventAnswerSubmitted    = "ANSWER_SUBMITTED"
	EventMatchCompleted     = "MATCH_COMPLETED"
	EventLeaderboardUpdated = "LEADERBOARD_UPDATED"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	IsClosed bool
	Mu       sync.Mutex
}

// Hub fans battle and bracket events out to every connected client.
// Exactly one tournament is live at a time, so there is a single room.
type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			log.Printf("Client registered. Total clients: %d", len(h.clients))
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				client.Mu.Lock()
				if !client.IsClosed {
					close(client.Send)
					client.IsClosed = true
				}
				client.Mu.Unlock()
				delete(h.clients, client)
				log.Printf("Client unregistered. Total clients: %d", len(h.clients))
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.RLock()
			for client := range h.clients {
				client.Mu.Lock()
				if client.IsClosed {
					client.Mu.Unlock()
					continue
				}
				select {
				case client.Send <- message:
				default:
					log.Printf("Client send channel full. Dropping message for slow client.")
				}
				client.Mu.Unlock()
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastEvent marshals an event envelope and queues it for delivery.
// Safe to call on a nil hub so the core can run without a live UI.
func (h *Hub) BroadcastEvent(eventType string, payload interface{}) {
	if h == nil {
		return
	}
	message, err := json.Marshal(WebSocketMessage{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("Error marshalling %s event: %v", eventType, err)
		return
	}
	select {
	case h.Broadcast <- message:
	default:
		log.Printf("Broadcast channel full. Dropping %s event.", eventType)
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		// Spectator connections are one-way; inbound frames only keep the
		// connection alive.
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error: %v", err)
			}
			break
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Drain anything queued behind the current message.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
