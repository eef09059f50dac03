package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"fleetsim-backend/internal/models"
)

// Hub maintains the set of connected dashboard clients and fans
// simulation events out to all of them.
type Hub struct {
	clients map[*Client]bool

	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex
}

// Event is the wire shape of every message the hub sends.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("✅ [WEBSOCKET] Dashboard client connected (total: %d)", h.clientCount())

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("🔴 [WEBSOCKET] Dashboard client disconnected (remaining: %d)", h.clientCount())

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client buffer full, disconnect
					close(client.send)
					delete(h.clients, client)
					log.Println("⚠️ Client buffer full, disconnecting")
				}
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// SimulationCompleted pushes a freshly persisted snapshot to every
// connected dashboard. Non-blocking: if the hub is saturated the event is
// dropped, dashboards catch up on their next stats poll.
func (h *Hub) SimulationCompleted(result models.SimulationResult) {
	data, err := json.Marshal(Event{Type: "simulation_completed", Data: result})
	if err != nil {
		log.Printf("❌ Failed to marshal simulation event: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Println("⚠️ Broadcast channel full, dropping simulation event")
	}
}
