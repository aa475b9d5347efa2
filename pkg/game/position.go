package game

import (
	"fmt"

	"github.com/notnil/chess"
)

// Position is a mutable board state backed by notnil/chess. The library's
// positions are immutable, so Apply pushes the previous state and Undo pops
// it, which makes restoration exact by construction.
type Position struct {
	current *chess.Position
	history []*chess.Position
}

func NewPosition() *Position {
	return &Position{current: chess.NewGame().Position()}
}

func NewPositionFromFEN(fen string) (*Position, error) {
	var opt, err = chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("game: parse fen %q: %w", fen, err)
	}
	return &Position{current: chess.NewGame(opt).Position()}, nil
}

// LegalMoves returns the legal moves in library order.
func (p *Position) LegalMoves() []*chess.Move {
	return p.current.ValidMoves()
}

func (p *Position) Apply(move *chess.Move) {
	p.history = append(p.history, p.current)
	p.current = p.current.Update(move)
}

// Undo reverts the most recent Apply. Panics when there is nothing to undo,
// which is always a caller bug.
func (p *Position) Undo() {
	var n = len(p.history)
	if n == 0 {
		panic("game: undo without a matching apply")
	}
	p.current = p.history[n-1]
	p.history = p.history[:n-1]
}

func (p *Position) IsCheckmate() bool {
	return p.current.Status() == chess.Checkmate
}

func (p *Position) IsDraw() bool {
	return p.current.Status() == chess.Stalemate
}

func (p *Position) IsTerminal() bool {
	return p.current.Status() != chess.NoMethod
}

func (p *Position) WhiteToMove() bool {
	return p.current.Turn() == chess.White
}

// PieceCount counts the pieces of both sides, kings included.
func (p *Position) PieceCount() int {
	return len(p.current.Board().SquareMap())
}

func (p *Position) FEN() string {
	return p.current.String()
}

func (p *Position) Board() *chess.Board {
	return p.current.Board()
}

// ParseMove decodes a move in UCI notation ("e2e4", "e7e8q") against the
// current position.
func (p *Position) ParseMove(s string) (*chess.Move, error) {
	return chess.UCINotation{}.Decode(p.current, s)
}
