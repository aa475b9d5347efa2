package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWatch upgrades the connection and registers it as a spectator of one
// game. The connection only receives events; incoming frames are drained so
// close messages are still processed.
func (h *Handler) handleWatch(w http.ResponseWriter, r *http.Request) {
	var g, err = h.manager.Game(r.URL.Query().Get("game_id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("watch upgrade: %v", err)
		return
	}

	g.addWatcher(conn)
	go func() {
		defer g.removeWatcher(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (g *Game) addWatcher(conn *websocket.Conn) {
	g.watcherMu.Lock()
	g.watchers[conn] = struct{}{}
	g.watcherMu.Unlock()
}

func (g *Game) removeWatcher(conn *websocket.Conn) {
	g.watcherMu.Lock()
	delete(g.watchers, conn)
	g.watcherMu.Unlock()
	conn.Close()
}

// broadcast sends the event to every watcher, dropping connections that
// fail to accept the write.
func (g *Game) broadcast(event MoveEvent) {
	g.watcherMu.Lock()
	defer g.watcherMu.Unlock()
	for conn := range g.watchers {
		if err := conn.WriteJSON(event); err != nil {
			delete(g.watchers, conn)
			conn.Close()
		}
	}
}
