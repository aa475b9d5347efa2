package server

import (
	"github.com/notnil/chess"

	"github.com/minnow-chess/minnow/pkg/game"
)

type NewGameRequest struct {
	FEN string `json:"fen,omitempty"`
}

type NewGameResponse struct {
	GameID      string   `json:"game_id"`
	FEN         string   `json:"fen"`
	WhiteToMove bool     `json:"white_to_move"`
	LegalMoves  []string `json:"legal_moves"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

type PlayResponse struct {
	EngineMove  string   `json:"engine_move,omitempty"`
	FEN         string   `json:"fen"`
	WhiteToMove bool     `json:"white_to_move"`
	LegalMoves  []string `json:"legal_moves"`
	Status      string   `json:"status"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	FEN         string   `json:"fen"`
	WhiteToMove bool     `json:"white_to_move"`
	LegalMoves  []string `json:"legal_moves"`
	Status      string   `json:"status"`
}

// MoveEvent is pushed to websocket watchers after every applied move.
type MoveEvent struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
	FEN    string `json:"fen"`
	Status string `json:"status"`
}

func movesToDTO(moves []*chess.Move) []string {
	var result = make([]string, len(moves))
	for i, move := range moves {
		result[i] = move.String()
	}
	return result
}

func statusOf(p *game.Position) string {
	switch {
	case p.IsCheckmate():
		return "checkmate"
	case p.IsDraw():
		return "draw"
	default:
		return "ongoing"
	}
}
