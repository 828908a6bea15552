package memory

import (
	"context"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
)

type GameRepo struct {
	store *Store
}

func NewGameRepo(store *Store) GameRepo {
	return GameRepo{store: store}
}

func (r GameRepo) GetByID(ctx context.Context, gameID string) (*game.Game, error) {
	defer r.store.read(ctx)()
	g, ok := r.store.games[gameID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return g.Clone(), nil
}

func (r GameRepo) SaveWithVersion(ctx context.Context, g *game.Game, expectedVersion int64) error {
	defer r.store.write(ctx)()
	current, ok := r.store.games[g.ID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
		r.store.games[g.ID] = g.Clone()
		return nil
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.games[g.ID] = g.Clone()
	return nil
}
