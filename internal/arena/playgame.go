package arena

import (
	"context"
	"fmt"

	"github.com/notnil/chess"

	"github.com/minnow-chess/minnow/pkg/engine"
	"github.com/minnow-chess/minnow/pkg/game"
)

const (
	ResultDraw = iota
	ResultWhiteWins
	ResultBlackWins
)

type GameInfo struct {
	GameNumber     int
	EngineAIsWhite bool
}

type GameResult struct {
	GameInfo
	Result  int
	Comment string
	Plies   int
}

// PlayGame runs one self-play game from the starting position until a
// terminal state or adjudication. Repetition and material draws are
// adjudicated here: the engine judges single positions only.
func PlayGame(
	ctx context.Context,
	engineA, engineB *engine.Engine,
	info GameInfo,
	maxPlies int,
) (GameResult, error) {
	var p = game.NewPosition()
	var keys = make(map[uint64]int)
	var plies = 0

	for {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if p.IsCheckmate() {
			var result = ResultWhiteWins
			if p.WhiteToMove() {
				result = ResultBlackWins
			}
			return GameResult{GameInfo: info, Result: result, Comment: "checkmate", Plies: plies}, nil
		}
		if p.IsDraw() {
			return GameResult{GameInfo: info, Result: ResultDraw, Comment: "stalemate", Plies: plies}, nil
		}
		if isLowMaterial(p) {
			return GameResult{GameInfo: info, Result: ResultDraw, Comment: "low material", Plies: plies}, nil
		}
		keys[p.Key()]++
		if keys[p.Key()] == 3 {
			return GameResult{GameInfo: info, Result: ResultDraw, Comment: "3 fold repetition", Plies: plies}, nil
		}
		if plies >= maxPlies {
			return GameResult{GameInfo: info, Result: ResultDraw, Comment: "ply cap", Plies: plies}, nil
		}

		var eng = engineB
		if p.WhiteToMove() == info.EngineAIsWhite {
			eng = engineA
		}
		var move = eng.ChooseMove(p)
		if move == nil {
			return GameResult{}, fmt.Errorf("arena: no move in a non-terminal position %v", p.FEN())
		}
		p.Apply(move)
		plies++
	}
}

// isLowMaterial reports king vs king, optionally with a single minor piece.
func isLowMaterial(p *game.Position) bool {
	var minors = 0
	for _, piece := range p.Board().SquareMap() {
		switch piece.Type() {
		case chess.King:
		case chess.Knight, chess.Bishop:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}
