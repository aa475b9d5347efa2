package engine

import (
	"github.com/notnil/chess"

	"github.com/minnow-chess/minnow/pkg/game"
)

// Piece values in pawns. The king carries no material weight: it is never
// captured.
var materialValue = [...]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// evaluate scores a position from the engine's perspective. Checkmate with
// the engine to move is a forced loss, checkmate of the opponent a forced
// win, a drawn terminal state is dead even. Everything else is the material
// differential.
func (e *Engine) evaluate(p *game.Position) int {
	if p.IsDraw() {
		return valueDraw
	}
	if p.IsCheckmate() {
		if p.WhiteToMove() == e.whiteSide {
			return valueLoss
		}
		return valueWin
	}
	var score = materialBalance(p)
	if !e.whiteSide {
		score = -score
	}
	return score
}

// materialBalance sums piece values from white's point of view.
func materialBalance(p *game.Position) int {
	var score = 0
	for _, piece := range p.Board().SquareMap() {
		var value = materialValue[piece.Type()]
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}
