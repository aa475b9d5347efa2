package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/minnow-chess/minnow/internal/server"
	"github.com/minnow-chess/minnow/pkg/engine"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	var addr = flag.String("addr", ":8080", "Listen address")
	var seed = flag.Int64("seed", time.Now().UnixNano(), "Random seed for engine tie-breaks")
	var midgameDepth = flag.Int("midgamedepth", 4, "Search depth with 10 or more pieces")
	var endgameDepth = flag.Int("endgamedepth", 6, "Search depth below 10 pieces")
	flag.Parse()

	var manager = server.NewManager(*seed)
	manager.ConfigureEngine = func(e *engine.Engine) {
		e.MidgameDepth = *midgameDepth
		e.EndgameDepth = *endgameDepth
	}

	log.Printf("listening on %v", *addr)
	return http.ListenAndServe(*addr, server.NewHandler(manager))
}
