package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

func TestGameRepo_VersionCheck(t *testing.T) {
	store := NewStore()
	repo := NewGameRepo(store)
	ctx := context.Background()
	g := game.New("g-1", world.NewMap(3, 3, world.TypePlains))
	g.Version = 1

	if err := repo.SaveWithVersion(ctx, g, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict creating with version 1, got %v", err)
	}
	if err := repo.SaveWithVersion(ctx, g, 0); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := repo.GetByID(ctx, "g-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	loaded.Map.Tile(0, 0).TypeID = world.TypeOcean
	again, _ := repo.GetByID(ctx, "g-1")
	if again.Map.Tile(0, 0).TypeID != world.TypePlains {
		t.Fatalf("stored game changed through a loaded copy")
	}

	loaded.Version = 2
	if err := repo.SaveWithVersion(ctx, loaded, 1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.SaveWithVersion(ctx, loaded, 1); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected stale update to conflict, got %v", err)
	}
	if _, err := repo.GetByID(ctx, "g-2"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBattleRepo_IdempotencyAndOrder(t *testing.T) {
	store := NewStore()
	repo := NewBattleRepo(store)
	tx := NewTxManager(store)
	ctx := context.Background()

	err := tx.RunInTx(ctx, func(txCtx context.Context) error {
		for i, key := range []string{"a", "b", "c"} {
			r := ports.BattleReport{ID: key, GameID: "g-1", IdempotencyKey: key, OccurredAt: time.Unix(int64(i), 0)}
			if err := repo.Save(txCtx, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, ports.BattleReport{GameID: "g-1", IdempotencyKey: "a"}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected duplicate key conflict, got %v", err)
	}

	got, err := repo.GetByIdempotencyKey(ctx, "g-1", "b")
	if err != nil || got.ID != "b" {
		t.Fatalf("lookup: %v %+v", err, got)
	}
	if _, err := repo.GetByIdempotencyKey(ctx, "g-2", "b"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("keys are scoped per game, got %v", err)
	}

	list, err := repo.ListByGameID(ctx, "g-1", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c" || list[1].ID != "b" {
		t.Fatalf("expected newest first, got %+v", list)
	}
}

func TestTxManager_Nested(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)
	repo := NewGameRepo(store)
	store.SeedGame(game.New("g-1", world.NewMap(2, 2, world.TypePlains)))

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		return tx.RunInTx(ctx, func(inner context.Context) error {
			_, err := repo.GetByID(inner, "g-1")
			return err
		})
	})
	if err != nil {
		t.Fatalf("nested tx: %v", err)
	}
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)
	games := NewGameRepo(store)
	battles := NewBattleRepo(store)
	g := game.New("g-1", world.NewMap(2, 2, world.TypePlains))
	g.Version = 1
	store.SeedGame(g)
	if err := battles.Save(context.Background(), ports.BattleReport{ID: "r-0", GameID: "g-1", IdempotencyKey: "k-0"}); err != nil {
		t.Fatalf("seed report: %v", err)
	}

	boom := errors.New("boom")
	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		next, err := games.GetByID(ctx, "g-1")
		if err != nil {
			return err
		}
		next.Version = 2
		if err := games.SaveWithVersion(ctx, next, 1); err != nil {
			return err
		}
		if err := battles.Save(ctx, ports.BattleReport{ID: "r-1", GameID: "g-1", IdempotencyKey: "k-1"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got, err := games.GetByID(context.Background(), "g-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Version != 1 {
		t.Fatalf("expected version 1 after rollback, got %d", got.Version)
	}
	if _, err := battles.GetByIdempotencyKey(context.Background(), "g-1", "k-1"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected rolled back report to be gone, got %v", err)
	}
	list, err := battles.ListByGameID(context.Background(), "g-1", 0)
	if err != nil || len(list) != 1 || list[0].ID != "r-0" {
		t.Fatalf("expected only the earlier report, got %+v err=%v", list, err)
	}
}
