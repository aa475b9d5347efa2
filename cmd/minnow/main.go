package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/minnow-chess/minnow/pkg/engine"
	"github.com/minnow-chess/minnow/pkg/game"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	var fen = flag.String("fen", "", "Starting position (default: standard)")
	var engineWhite = flag.Bool("enginewhite", false, "Engine plays white")
	var seed = flag.Int64("seed", time.Now().UnixNano(), "Random seed for tie-breaks")
	flag.Parse()

	var p *game.Position
	if *fen == "" {
		p = game.NewPosition()
	} else {
		var err error
		p, err = game.NewPositionFromFEN(*fen)
		if err != nil {
			return err
		}
	}

	var eng = engine.NewEngine(*seed)
	var name, version = eng.GetInfo()
	fmt.Printf("%v %v\n", name, version)

	var reader = bufio.NewReader(os.Stdin)
	for {
		printPosition(p)
		if p.IsCheckmate() {
			if p.WhiteToMove() {
				fmt.Println("checkmate, black wins")
			} else {
				fmt.Println("checkmate, white wins")
			}
			return nil
		}
		if p.IsDraw() {
			fmt.Println("draw")
			return nil
		}

		if p.WhiteToMove() == *engineWhite {
			var move = eng.ChooseMove(p)
			if move == nil {
				return fmt.Errorf("engine found no move in %v", p.FEN())
			}
			fmt.Printf("engine plays %v\n", move)
			p.Apply(move)
			continue
		}

		fmt.Print("your move (e.g. e2e4, or quit): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "quit" {
			return nil
		}
		move, err := p.ParseMove(line)
		if err != nil {
			fmt.Println("illegal move")
			continue
		}
		p.Apply(move)
	}
}
