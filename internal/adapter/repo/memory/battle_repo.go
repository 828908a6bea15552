package memory

import (
	"context"

	"newworld/internal/app/ports"
)

type BattleRepo struct {
	store *Store
}

func NewBattleRepo(store *Store) BattleRepo {
	return BattleRepo{store: store}
}

func (r BattleRepo) GetByIdempotencyKey(ctx context.Context, gameID, key string) (*ports.BattleReport, error) {
	defer r.store.read(ctx)()
	rec, ok := r.store.byKey[battleKey(gameID, key)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	copy := rec
	return &copy, nil
}

func (r BattleRepo) Save(ctx context.Context, report ports.BattleReport) error {
	defer r.store.write(ctx)()
	k := battleKey(report.GameID, report.IdempotencyKey)
	if _, exists := r.store.byKey[k]; exists {
		return ports.ErrConflict
	}
	r.store.byKey[k] = report
	r.store.battles[report.GameID] = append(r.store.battles[report.GameID], report)
	return nil
}

// ListByGameID returns the newest reports first.
func (r BattleRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]ports.BattleReport, error) {
	defer r.store.read(ctx)()
	all := r.store.battles[gameID]
	out := make([]ports.BattleReport, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, all[i])
	}
	return out, nil
}
