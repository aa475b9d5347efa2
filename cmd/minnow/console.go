package main

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/minnow-chess/minnow/pkg/game"
)

const (
	whiteKing   = "♔"
	whiteQueen  = "♕"
	whiteRook   = "♖"
	whiteBishop = "♗"
	whiteKnight = "♘"
	whitePawn   = "♙"
	blackKing   = "♚"
	blackQueen  = "♛"
	blackRook   = "♜"
	blackBishop = "♝"
	blackKnight = "♞"
	blackPawn   = "♟"
)

var chessSymbols = map[chess.Piece]string{
	chess.WhiteKing:   whiteKing,
	chess.WhiteQueen:  whiteQueen,
	chess.WhiteRook:   whiteRook,
	chess.WhiteBishop: whiteBishop,
	chess.WhiteKnight: whiteKnight,
	chess.WhitePawn:   whitePawn,
	chess.BlackKing:   blackKing,
	chess.BlackQueen:  blackQueen,
	chess.BlackRook:   blackRook,
	chess.BlackBishop: blackBishop,
	chess.BlackKnight: blackKnight,
	chess.BlackPawn:   blackPawn,
}

func printPosition(p *game.Position) {
	var board = p.Board()
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%v ", rank+1)
		for file := 0; file < 8; file++ {
			var sq = chess.Square(rank*8 + file)
			if piece := board.Piece(sq); piece != chess.NoPiece {
				fmt.Print(chessSymbols[piece])
			} else {
				fmt.Print(" ")
			}
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h")
}
