package engine

import (
	"math/rand"

	"github.com/notnil/chess"

	"github.com/minnow-chess/minnow/pkg/game"
)

const (
	valueWin      = 1_000_000
	valueLoss     = -valueWin
	valueDraw     = 0
	valueInfinity = valueWin + 1
)

// Engine selects one move per turn with a fixed-depth alpha-beta search.
// Option fields may be adjusted between calls to ChooseMove, never during
// one. An Engine is not safe for concurrent use.
type Engine struct {
	MidgameDepth  int
	EndgameDepth  int
	EndgamePieces int
	DisableTable  bool
	rnd           *rand.Rand
	transTable    *TransTable
	whiteSide     bool
}

func NewEngine(seed int64) *Engine {
	return &Engine{
		MidgameDepth:  4,
		EndgameDepth:  6,
		EndgamePieces: 10,
		rnd:           rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) GetInfo() (name, version string) {
	return "Minnow", "1.0.0"
}

// ChooseMove returns the best move for the side to move, breaking ties
// uniformly at random. It returns nil only for a terminal position.
func (e *Engine) ChooseMove(p *game.Position) *chess.Move {
	e.whiteSide = p.WhiteToMove()
	e.transTable = nil
	if !e.DisableTable {
		e.transTable = NewTransTable()
	}

	var moves = p.LegalMoves()
	if len(moves) == 0 {
		return nil
	}

	var depth = e.chooseDepth(p.PieceCount())
	var bestScore = -valueInfinity
	var best []*chess.Move
	for _, move := range moves {
		p.Apply(move)
		var score = e.search(p, depth-1, -valueInfinity, valueInfinity, false)
		p.Undo()
		if score > bestScore {
			bestScore = score
			best = append(best[:0], move)
		} else if score == bestScore {
			best = append(best, move)
		}
	}
	if len(best) == 0 {
		return moves[0]
	}
	return best[e.rnd.Intn(len(best))]
}

// chooseDepth searches deeper once the board thins out and the branching
// factor drops.
func (e *Engine) chooseDepth(pieceCount int) int {
	if pieceCount < e.EndgamePieces {
		return e.EndgameDepth
	}
	return e.MidgameDepth
}
