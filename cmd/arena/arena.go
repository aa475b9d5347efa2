package main

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/minnow-chess/minnow/internal/arena"
)

func runMatch(ctx context.Context, config Config) error {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"concurrency", config.Concurrency)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan arena.GameInfo)
	var gameResults = make(chan arena.GameResult)

	g.Go(func() error {
		defer close(gameInfos)
		for i := 0; i < config.Games; i++ {
			var info = arena.GameInfo{
				GameNumber:     i + 1,
				EngineAIsWhite: i%2 == 0,
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameInfos <- info:
			}
		}
		return nil
	})

	g.Go(func() error {
		return showResults(ctx, gameResults)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		var workerSeed = config.Seed + int64(i)*1000
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, workerSeed, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	return g.Wait()
}

func playGames(
	ctx context.Context,
	seed int64,
	gameInfos <-chan arena.GameInfo,
	gameResults chan<- arena.GameResult,
) error {
	var engineA = newEngineA(seed)
	var engineB = newEngineB(seed + 1)
	for info := range gameInfos {
		var res, err = arena.PlayGame(ctx, engineA, engineB, info, config.MaxPlies)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
