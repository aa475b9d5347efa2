package server

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWatchReceivesMoveEvents(t *testing.T) {
	var srv = newTestServer()
	defer srv.Close()

	var created NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", NewGameRequest{}, &created)

	var wsURL = strings.Replace(srv.URL, "http", "ws", 1) + "/api/watch?game_id=" + created.GameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: created.GameID, Move: "e2e4"}, &PlayResponse{})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var event MoveEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatal(err)
	}
	if event.Move != "e2e4" || event.GameID != created.GameID {
		t.Errorf("unexpected first event %+v", event)
	}

	// The engine's reply arrives as a second event.
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatal(err)
	}
	if event.Move == "e2e4" {
		t.Error("second event must carry the engine move")
	}
}

func TestWatchUnknownGame(t *testing.T) {
	var srv = newTestServer()
	defer srv.Close()

	var wsURL = strings.Replace(srv.URL, "http", "ws", 1) + "/api/watch?game_id=nope"
	var _, resp, err = websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatal("expected the upgrade to fail for an unknown game")
	}
	if resp != nil && resp.StatusCode != 404 {
		t.Errorf("expected 404, got %v", resp.StatusCode)
	}
}
