package ports

import (
	"context"

	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

type MapGenerator interface {
	Generate(ctx context.Context, width, height int, seed int64) (*world.Map, error)
}

type ScenarioLoader interface {
	Load(ctx context.Context, name string) (*game.Game, error)
}
