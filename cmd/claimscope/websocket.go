// cmd/claimscope/websocket.go
package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// statusEvent is one pipeline stage notification pushed to connected pages
type statusEvent struct {
	Stage string    `json:"stage"`
	Claim string    `json:"claim,omitempty"`
	Time  time.Time `json:"time"`
}

// wsHub fans pipeline stage events out to websocket clients so the page can
// show progress while a check runs
type wsHub struct {
	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]bool
	mutex    sync.Mutex
}

func newWSHub() *wsHub {
	return &wsHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// handleWebsocket upgrades the connection and keeps it registered until the
// client goes away
func (h *wsHub) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		Logger().Debug("websocket upgrade failed: %v", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()

	// Clients never send anything meaningful; the read loop just detects
	// disconnects.
	go func() {
		defer RecoverFromPanic("websocket")
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(conn)
				return
			}
		}
	}()
}

func (h *wsHub) remove(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if h.clients[conn] {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Broadcast sends a stage event to every connected client. Dead connections
// are dropped on write failure.
func (h *wsHub) Broadcast(stage, claim string) {
	event := statusEvent{Stage: stage, Claim: claim, Time: time.Now()}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(event); err != nil {
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
