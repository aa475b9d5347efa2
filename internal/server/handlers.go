package server

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/watch":
		h.handleWatch(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}

	var g, err = h.manager.NewGame(req.FEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g.mu.Lock()
	var resp = NewGameResponse{
		GameID:      g.ID,
		FEN:         g.pos.FEN(),
		WhiteToMove: g.pos.WhiteToMove(),
		LegalMoves:  movesToDTO(g.pos.LegalMoves()),
	}
	g.mu.Unlock()
	writeJSON(w, resp)
}

// handlePlay applies the client's move, then answers with the engine's
// reply for the resulting position.
func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var g, err = h.manager.Game(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	move, err := g.pos.ParseMove(req.Move)
	if err != nil {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}
	g.pos.Apply(move)
	g.broadcast(MoveEvent{GameID: g.ID, Move: move.String(), FEN: g.pos.FEN(), Status: statusOf(g.pos)})

	var resp = PlayResponse{Status: statusOf(g.pos)}
	if engineMove := g.eng.ChooseMove(g.pos); engineMove != nil {
		g.pos.Apply(engineMove)
		resp.EngineMove = engineMove.String()
		resp.Status = statusOf(g.pos)
		g.broadcast(MoveEvent{GameID: g.ID, Move: engineMove.String(), FEN: g.pos.FEN(), Status: resp.Status})
	}
	resp.FEN = g.pos.FEN()
	resp.WhiteToMove = g.pos.WhiteToMove()
	resp.LegalMoves = movesToDTO(g.pos.LegalMoves())
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var g, err = h.manager.Game(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	writeJSON(w, StateResponse{
		FEN:         g.pos.FEN(),
		WhiteToMove: g.pos.WhiteToMove(),
		LegalMoves:  movesToDTO(g.pos.LegalMoves()),
		Status:      statusOf(g.pos),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
