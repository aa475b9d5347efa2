package main

import (
	"context"
	"log"

	"github.com/minnow-chess/minnow/internal/arena"
)

func showResults(ctx context.Context, gameResults <-chan arena.GameResult) error {
	var winsA, winsB, draws int
	for res := range gameResults {
		switch {
		case res.Result == arena.ResultDraw:
			draws++
		case (res.Result == arena.ResultWhiteWins) == res.EngineAIsWhite:
			winsA++
		default:
			winsB++
		}
		log.Printf("game %v: result=%v comment=%q plies=%v score A-B %v-%v (%v draws)",
			res.GameNumber, res.Result, res.Comment, res.Plies, winsA, winsB, draws)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	log.Printf("final score A-B %v-%v (%v draws)", winsA, winsB, draws)
	return nil
}
