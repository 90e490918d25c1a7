package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans events out to every connected websocket client. The dashboard
// subscribes to everything, so there is a single broadcast room.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool

	upgrader websocket.Upgrader
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard may be served from another origin.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Publish implements Publisher. Clients whose send buffer is full are
// closed and dropped so one slow subscriber cannot stall the rest.
func (h *Hub) Publish(e Event) {
	b, err := json.Marshal(e)
	if err != nil {
		log.Printf("[Events] Failed to marshal %s event: %v", e.Type, err)
		return
	}

	h.mu.RLock()
	conns := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		select {
		case c.send <- b:
		default:
			go c.close()
		}
	}
}

// ServeHTTP upgrades the request and registers the client.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Events] Upgrade failed: %v", err)
		return
	}

	c := newClient(h, conn)
	h.join(c)

	go c.writePump()
	go c.readPump()
}

// ClientCount reports the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) join(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

var _ Publisher = (*Hub)(nil)
