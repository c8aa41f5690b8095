package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/vi-tennis/engine"
	"github.com/lixenwraith/vi-tennis/metrics"
)

const (
	// MaxSpectators caps concurrent websocket connections
	MaxSpectators = 100

	writeWait = 2 * time.Second
)

// Message is the websocket envelope sent to spectators
type Message struct {
	Event string          `json:"event"`
	Data  engine.Snapshot `json:"data"`
}

// Hub fans published snapshots out to websocket spectators.
// Publish is called from the frame loop and never blocks; delivery runs in Run.
type Hub struct {
	latest atomic.Pointer[engine.Snapshot]

	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}

	broadcast chan []byte
	limiter   *rate.Limiter
	upgrader  websocket.Upgrader
	metrics   *metrics.Metrics
}

// NewHub creates a hub that broadcasts at most fps snapshots per second.
// origins lists allowed websocket origins; nil allows any.
func NewHub(fps float64, origins []string, m *metrics.Metrics) *Hub {
	if fps <= 0 {
		fps = 30
	}
	h := &Hub{
		clients:   make(map[*websocket.Conn]struct{}),
		broadcast: make(chan []byte, 16),
		limiter:   rate.NewLimiter(rate.Limit(fps), 1),
		metrics:   m,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if originAllowed(origins, origin) {
				return true
			}
			log.Printf("server: websocket origin rejected: %s", origin)
			return false
		},
	}
	return h
}

// Publish stores snap as the latest snapshot and queues it for spectators,
// throttled by the hub's rate limit
func (h *Hub) Publish(snap engine.Snapshot) {
	h.latest.Store(&snap)

	if h.ClientCount() == 0 || !h.limiter.Allow() {
		return
	}

	msg, err := json.Marshal(Message{Event: "snapshot", Data: snap})
	if err != nil {
		log.Printf("server: marshal snapshot: %v", err)
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.metrics.IncWSDropped()
	}
}

// Latest returns the most recently published snapshot
func (h *Hub) Latest() (engine.Snapshot, bool) {
	snap := h.latest.Load()
	if snap == nil {
		return engine.Snapshot{}, false
	}
	return *snap, true
}

// ClientCount returns the number of connected spectators
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run delivers queued snapshots until ctx is done, then closes all connections
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.send(msg)
		}
	}
}

func (h *Hub) send(msg []byte) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.remove(conn)
			continue
		}
		h.metrics.IncWSMessages()
	}
}

// HandleWebSocket upgrades the request and registers the spectator.
// The latest snapshot is sent immediately so new spectators do not wait for a change.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.ClientCount() >= MaxSpectators {
		http.Error(w, "Too many spectators", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	if snap, ok := h.Latest(); ok {
		if msg, err := json.Marshal(Message{Event: "snapshot", Data: snap}); err == nil {
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				conn.Close()
				return
			}
		}
	}

	h.add(conn)

	// Spectators only listen; reading detects disconnects
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	log.Printf("server: spectator connected from %s (%d total)", conn.RemoteAddr(), count)
	h.metrics.SetSpectators(count)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	if !ok {
		return
	}
	conn.Close()
	log.Printf("server: spectator disconnected (%d remaining)", count)
	h.metrics.SetSpectators(count)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	conns := h.clients
	h.clients = make(map[*websocket.Conn]struct{})
	h.mu.Unlock()

	for conn := range conns {
		conn.Close()
	}
	h.metrics.SetSpectators(0)
}
