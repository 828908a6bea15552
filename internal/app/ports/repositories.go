package ports

import (
	"context"
	"time"

	"newworld/internal/domain/combat"
	"newworld/internal/domain/game"
)

// BattleReport is the stored outcome of one resolved attack or
// bombardment. The seed and draw reproduce the results exactly.
type BattleReport struct {
	ID             string
	GameID         string
	IdempotencyKey string
	Kind           string
	AttackerID     string
	DefenderID     string
	Seed           int64
	Draw           float64
	Odds           combat.Odds
	Results        []string
	GameVersion    int64
	OccurredAt     time.Time
}

type GameRepository interface {
	GetByID(ctx context.Context, gameID string) (*game.Game, error)
	// SaveWithVersion stores g when the stored version equals
	// expectedVersion. Zero creates the game.
	SaveWithVersion(ctx context.Context, g *game.Game, expectedVersion int64) error
}

type BattleRepository interface {
	GetByIdempotencyKey(ctx context.Context, gameID, key string) (*BattleReport, error)
	Save(ctx context.Context, report BattleReport) error
	ListByGameID(ctx context.Context, gameID string, limit int) ([]BattleReport, error)
}
