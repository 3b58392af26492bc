// Package ws pushes kitchen ticket events to connected displays. The
// feed is one-way; displays acknowledge tickets over the HTTP API.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"bistro-pos/internal/logger"
	"bistro-pos/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is one frame on the kitchen feed.
type Event struct {
	Type string     `json:"type"`
	KOT  models.KOT `json:"kot"`
}

// Hub fans KOT events out to every connected kitchen display.
type Hub struct {
	log     *logger.Logger
	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{log: log, clients: make(map[*client]struct{})}
}

// BroadcastKOT pushes a ticket event to every display. Slow clients
// have the frame dropped rather than blocking the engine.
func (h *Hub) BroadcastKOT(eventType string, kot models.KOT) {
	data, err := json.Marshal(Event{Type: eventType, KOT: kot})
	if err != nil {
		h.log.Error("ws_broadcast", "marshal ticket event", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.log.Warn("ws_broadcast", "client buffer full, dropping frame")
		}
	}
}

// Serve upgrades the request and keeps the connection until the client
// goes away.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("ws_serve", "upgrade failed", err)
		return
	}

	cl := &client{conn: conn, send: make(chan []byte, 256)}
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go cl.writePump()
	go func() {
		cl.readPump()
		h.mu.Lock()
		delete(h.clients, cl)
		h.mu.Unlock()
		close(cl.send)
	}()
}

// readPump discards client frames and surfaces disconnects.
func (c *client) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
