package server

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/minnow-chess/minnow/pkg/engine"
	"github.com/minnow-chess/minnow/pkg/game"
)

// Game is one hosted game. Its mutex serializes moves so the engine and the
// position keep their single-threaded discipline; watchers receive an event
// per applied move.
type Game struct {
	ID  string
	mu  sync.Mutex
	pos *game.Position
	eng *engine.Engine

	watcherMu sync.Mutex
	watchers  map[*websocket.Conn]struct{}
}

// Manager owns the in-memory game table. ConfigureEngine, when set, is
// applied to the engine of every new game (depth options and the like).
type Manager struct {
	ConfigureEngine func(*engine.Engine)

	mu    sync.RWMutex
	games map[string]*Game
	seed  int64
}

func NewManager(seed int64) *Manager {
	return &Manager{
		games: make(map[string]*Game),
		seed:  seed,
	}
}

// NewGame creates a game from fen, or from the starting position when fen is
// empty.
func (m *Manager) NewGame(fen string) (*Game, error) {
	var pos *game.Position
	if fen == "" {
		pos = game.NewPosition()
	} else {
		var err error
		pos, err = game.NewPositionFromFEN(fen)
		if err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seed++
	var g = &Game{
		ID:       uuid.NewString(),
		pos:      pos,
		eng:      engine.NewEngine(m.seed),
		watchers: make(map[*websocket.Conn]struct{}),
	}
	if m.ConfigureEngine != nil {
		m.ConfigureEngine(g.eng)
	}
	m.games[g.ID] = g
	return g, nil
}

func (m *Manager) Game(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var g, ok = m.games[id]
	if !ok {
		return nil, fmt.Errorf("server: game %v not found", id)
	}
	return g, nil
}
