package livehttp

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"okxpos/internal/logger"
	"okxpos/internal/monitor"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsSendBuffer = 16
)

// Hub pushes snapshots and notifications to every connected dashboard.
// It implements monitor.Publisher and notifier.TextNotifier.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*wsClient]struct{}
	closed  bool
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		clients: make(map[*wsClient]struct{}),
	}
}

// Publish broadcasts a snapshot.
func (h *Hub) Publish(s monitor.Snapshot) {
	view := View(s)
	h.broadcast(wsMessage{Type: "snapshot", Data: &view})
}

// SendText broadcasts a user notification.
func (h *Hub) SendText(text string) error {
	h.broadcast(wsMessage{Type: "notify", Text: text})
	return nil
}

// Clients returns the number of connected sockets.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(msg wsMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf("ws marshal %s failed: %v", msg.Type, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- payload:
		default:
			logger.Warnf("ws client %s too slow, dropping", c.conn.RemoteAddr())
			h.removeLocked(c)
		}
	}
}

// Serve upgrades the request and streams messages until the socket closes.
// The first message is the current snapshot.
func (h *Hub) Serve(c *gin.Context, initial monitor.Snapshot) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("ws upgrade failed ip=%s err=%v", c.ClientIP(), err)
		return
	}
	client := &wsClient{conn: conn, send: make(chan []byte, wsSendBuffer)}
	view := View(initial)
	first, err := json.Marshal(wsMessage{Type: "snapshot", Data: &view})
	if err == nil {
		client.send <- first
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(wsWriteWait))
		conn.Close()
		return
	}
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	logger.Debugf("ws client connected ip=%s", c.ClientIP())

	go h.writePump(client)
	h.readPump(client)
}

// readPump discards client frames; its only job is noticing disconnects.
func (h *Hub) readPump(c *wsClient) {
	defer h.remove(c)
	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *wsClient) {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	h.removeLocked(c)
	h.mu.Unlock()
}

func (h *Hub) removeLocked(c *wsClient) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

func (h *Hub) handle(ctrl Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !websocket.IsWebSocketUpgrade(c.Request) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade required"})
			return
		}
		h.Serve(c, ctrl.Snapshot())
	}
}
