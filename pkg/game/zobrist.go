package game

import (
	"math/rand"

	"github.com/notnil/chess"
)

var (
	sideKey        uint64
	enpassantKey   [8]uint64
	castlingKey    [16]uint64
	pieceSquareKey [12 * 64]uint64
)

func pieceKey(piece chess.Piece, sq chess.Square) uint64 {
	var index = (int(piece.Color())-1)*6 + int(piece.Type()) - 1
	return pieceSquareKey[index*64+int(sq)]
}

// Key returns a zobrist fingerprint of the current state: piece placement,
// side to move, castling rights and en-passant file.
func (p *Position) Key() uint64 {
	var result = uint64(0)
	if p.current.Turn() == chess.White {
		result ^= sideKey
	}
	result ^= castlingKey[castleBits(p.current.CastleRights())]
	if ep := p.current.EnPassantSquare(); ep != chess.NoSquare {
		result ^= enpassantKey[int(ep.File())]
	}
	var board = p.current.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if piece := board.Piece(sq); piece != chess.NoPiece {
			result ^= pieceKey(piece, sq)
		}
	}
	return result
}

func castleBits(cr chess.CastleRights) int {
	var bits = 0
	if cr.CanCastle(chess.White, chess.KingSide) {
		bits |= 1
	}
	if cr.CanCastle(chess.White, chess.QueenSide) {
		bits |= 2
	}
	if cr.CanCastle(chess.Black, chess.KingSide) {
		bits |= 4
	}
	if cr.CanCastle(chess.Black, chess.QueenSide) {
		bits |= 8
	}
	return bits
}

func init() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := 0; i < len(enpassantKey); i++ {
		enpassantKey[i] = r.Uint64()
	}
	for i := 0; i < len(pieceSquareKey); i++ {
		pieceSquareKey[i] = r.Uint64()
	}

	var castle = make([]uint64, 4)
	for i := 0; i < len(castle); i++ {
		castle[i] = r.Uint64()
	}

	for i := 0; i < len(castlingKey); i++ {
		for j := 0; j < 4; j++ {
			if (i & (1 << uint(j))) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}
}
