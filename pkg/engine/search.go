package engine

import (
	"github.com/minnow-chess/minnow/pkg/game"
)

// search is plain alpha-beta minimax. Entries are stored with a bound class
// so a value clipped by a cutoff is never replayed as exact: only an exact
// depth-sufficient hit short-circuits, fail-high and fail-low entries just
// tighten the local window.
func (e *Engine) search(p *game.Position, depth, alpha, beta int, maximizing bool) int {
	var key uint64
	if e.transTable != nil {
		key = p.Key()
		if ttDepth, ttScore, ttBound, ok := e.transTable.Read(key); ok && ttDepth >= depth {
			if ttBound == boundExact {
				return ttScore
			}
			if (ttBound&boundLower) != 0 && ttScore > alpha {
				alpha = ttScore
			}
			if (ttBound&boundUpper) != 0 && ttScore < beta {
				beta = ttScore
			}
			if alpha >= beta {
				return ttScore
			}
		}
	}

	if depth == 0 || p.IsTerminal() {
		return e.evaluate(p)
	}

	var alphaOrig = alpha
	var betaOrig = beta
	var best int
	if maximizing {
		best = -valueInfinity
		for _, move := range p.LegalMoves() {
			p.Apply(move)
			var score = e.search(p, depth-1, alpha, beta, false)
			p.Undo()
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
	} else {
		best = valueInfinity
		for _, move := range p.LegalMoves() {
			p.Apply(move)
			var score = e.search(p, depth-1, alpha, beta, true)
			p.Undo()
			if score < best {
				best = score
			}
			if best < beta {
				beta = best
			}
			if beta <= alpha {
				break
			}
		}
	}

	if e.transTable != nil {
		var bound = boundExact
		if best <= alphaOrig {
			bound = boundUpper
		} else if best >= betaOrig {
			bound = boundLower
		}
		e.transTable.Update(key, depth, best, bound)
	}
	return best
}
