package main

import (
	"context"
	"flag"
	"log"

	"github.com/minnow-chess/minnow/pkg/engine"
)

type Config struct {
	Games       int
	Concurrency int
	MaxPlies    int
	DepthA      int
	DepthB      int
	Seed        int64
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Games, "games", 20, "Number of games")
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of concurrent games")
	flag.IntVar(&config.MaxPlies, "maxplies", 300, "Adjudicate a draw after this many plies")
	flag.IntVar(&config.DepthA, "deptha", 4, "Midgame depth of engine A")
	flag.IntVar(&config.DepthB, "depthb", 4, "Midgame depth of engine B")
	flag.Int64Var(&config.Seed, "seed", 1, "Base random seed")
	flag.Parse()

	log.Printf("%+v", config)

	return runMatch(context.Background(), config)
}

func newEngineA(seed int64) *engine.Engine {
	var eng = engine.NewEngine(seed)
	eng.MidgameDepth = config.DepthA
	return eng
}

func newEngineB(seed int64) *engine.Engine {
	var eng = engine.NewEngine(seed)
	eng.MidgameDepth = config.DepthB
	return eng
}
