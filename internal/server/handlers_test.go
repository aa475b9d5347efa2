package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/minnow-chess/minnow/pkg/engine"
)

func newTestServer() *httptest.Server {
	var manager = NewManager(1)
	manager.ConfigureEngine = func(e *engine.Engine) {
		e.MidgameDepth = 2
		e.EndgameDepth = 2
	}
	return httptest.NewServer(NewHandler(manager))
}

func postJSON(t *testing.T, url string, req, resp interface{}) *http.Response {
	t.Helper()
	var body, err = json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	r, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer r.Body.Close()
	if r.StatusCode == http.StatusOK && resp != nil {
		if err := json.NewDecoder(r.Body).Decode(resp); err != nil {
			t.Fatal(err)
		}
	}
	return r
}

func TestNewGameAndPlay(t *testing.T) {
	var srv = newTestServer()
	defer srv.Close()

	var created NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", NewGameRequest{}, &created)
	if created.GameID == "" {
		t.Fatal("expected a game id")
	}
	if len(created.LegalMoves) != 20 {
		t.Fatalf("expected 20 legal moves, got %v", len(created.LegalMoves))
	}
	if !created.WhiteToMove {
		t.Error("white moves first")
	}

	var played PlayResponse
	postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: created.GameID, Move: "e2e4"}, &played)
	if played.EngineMove == "" {
		t.Fatal("expected an engine reply")
	}
	if !played.WhiteToMove {
		t.Error("white to move again after the engine reply")
	}
	if played.Status != "ongoing" {
		t.Errorf("expected an ongoing game, got %v", played.Status)
	}

	var state StateResponse
	postJSON(t, srv.URL+"/api/state", StateRequest{GameID: created.GameID}, &state)
	if state.FEN != played.FEN {
		t.Error("state must match the last play response")
	}
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	var srv = newTestServer()
	defer srv.Close()

	var created NewGameResponse
	postJSON(t, srv.URL+"/api/new_game", NewGameRequest{}, &created)

	var r = postJSON(t, srv.URL+"/api/play", PlayRequest{GameID: created.GameID, Move: "e2e5"}, nil)
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for an illegal move, got %v", r.StatusCode)
	}
}

func TestUnknownGame(t *testing.T) {
	var srv = newTestServer()
	defer srv.Close()

	var r = postJSON(t, srv.URL+"/api/state", StateRequest{GameID: "nope"}, nil)
	if r.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown game, got %v", r.StatusCode)
	}
}

func TestNewGameFromFEN(t *testing.T) {
	var srv = newTestServer()
	defer srv.Close()

	var created NewGameResponse
	postJSON(t, srv.URL+"/api/new_game",
		NewGameRequest{FEN: "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"}, &created)
	if created.GameID == "" {
		t.Fatal("expected a game id")
	}

	var r = postJSON(t, srv.URL+"/api/new_game", NewGameRequest{FEN: "not a fen"}, nil)
	if r.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad fen, got %v", r.StatusCode)
	}
}
