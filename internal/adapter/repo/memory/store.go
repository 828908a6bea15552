package memory

import (
	"context"
	"maps"
	"sync"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
)

type Store struct {
	mu      sync.RWMutex
	games   map[string]*game.Game
	battles map[string][]ports.BattleReport
	byKey   map[string]ports.BattleReport
}

func NewStore() *Store {
	return &Store{
		games:   make(map[string]*game.Game),
		battles: make(map[string][]ports.BattleReport),
		byKey:   make(map[string]ports.BattleReport),
	}
}

func battleKey(gameID, key string) string {
	return gameID + "::" + key
}

func (s *Store) SeedGame(g *game.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.ID] = g.Clone()
}

type storeSnapshot struct {
	games   map[string]*game.Game
	battles map[string][]ports.BattleReport
	byKey   map[string]ports.BattleReport
}

// snapshot copies the maps only. Saved games are replaced, never mutated in
// place, and report slices are restored by length.
func (s *Store) snapshot() storeSnapshot {
	return storeSnapshot{
		games:   maps.Clone(s.games),
		battles: maps.Clone(s.battles),
		byKey:   maps.Clone(s.byKey),
	}
}

func (s *Store) restore(snap storeSnapshot) {
	s.games, s.battles, s.byKey = snap.games, snap.battles, snap.byKey
}

type txKey struct{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}

// read and write take the store lock unless a transaction already holds it.
func (s *Store) read(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *Store) write(ctx context.Context) func() {
	if inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}
