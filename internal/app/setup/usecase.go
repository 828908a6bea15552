package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/platform/rng"
)

var ErrInvalidRequest = errors.New("invalid setup request")

const MaxMapSide = 256

type UseCase struct {
	Games     ports.GameRepository
	Generator ports.MapGenerator
	Scenarios ports.ScenarioLoader
	Now       func() time.Time
	NewSeed   func() (int64, error)
}

// Execute creates a game from a scenario or a generated map and stores
// it as version 1.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	var (
		g    *game.Game
		seed int64
		err  error
	)
	if name := strings.TrimSpace(req.Scenario); name != "" {
		if u.Scenarios == nil {
			return Response{}, ErrInvalidRequest
		}
		g, err = u.Scenarios.Load(ctx, name)
	} else {
		g, seed, err = u.generate(ctx, req)
	}
	if err != nil {
		return Response{}, err
	}

	g.ID = uuid.NewString()
	g.Version = 1
	if u.Now != nil {
		g.UpdatedAt = u.Now()
	} else {
		g.UpdatedAt = time.Now()
	}
	if err := g.Validate(); err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if err := u.Games.SaveWithVersion(ctx, g, 0); err != nil {
		return Response{}, err
	}
	return Response{
		GameID:      g.ID,
		Width:       g.Map.Width,
		Height:      g.Map.Height,
		Seed:        seed,
		Players:     len(g.Players),
		Units:       len(g.Units),
		Settlements: len(g.Settlements),
		Version:     g.Version,
	}, nil
}

func (u UseCase) generate(ctx context.Context, req Request) (*game.Game, int64, error) {
	if req.Width <= 0 || req.Height <= 0 || req.Width > MaxMapSide || req.Height > MaxMapSide {
		return nil, 0, ErrInvalidRequest
	}
	players, err := buildPlayers(req.Players)
	if err != nil {
		return nil, 0, err
	}
	var seed int64
	switch {
	case req.Seed != nil:
		seed = *req.Seed
	case u.NewSeed != nil:
		seed, err = u.NewSeed()
	default:
		seed, err = rng.NewSeed()
	}
	if err != nil {
		return nil, 0, err
	}
	m, err := u.Generator.Generate(ctx, req.Width, req.Height, seed)
	if err != nil {
		return nil, 0, err
	}
	g := game.New("", m)
	for _, p := range players {
		g.AddPlayer(p)
	}
	for _, ps := range req.Players {
		self := g.Player(strings.TrimSpace(ps.ID))
		if self == nil {
			return nil, 0, fmt.Errorf("%w: unknown player %q", ErrInvalidRequest, ps.ID)
		}
		for _, enemy := range ps.AtWarWith {
			other := g.Player(strings.TrimSpace(enemy))
			if other == nil || other == self {
				return nil, 0, fmt.Errorf("%w: unknown enemy %q", ErrInvalidRequest, enemy)
			}
			game.SetStance(self, other, game.StanceWar)
		}
	}
	return g, seed, nil
}

func buildPlayers(specs []PlayerSpec) ([]*game.Player, error) {
	out := make([]*game.Player, 0, len(specs))
	seen := map[string]bool{}
	for _, s := range specs {
		id := strings.TrimSpace(s.ID)
		if id == "" || seen[id] {
			return nil, fmt.Errorf("%w: bad player id %q", ErrInvalidRequest, s.ID)
		}
		seen[id] = true
		kind := game.PlayerKind(s.Kind)
		switch kind {
		case game.PlayerEuropean, game.PlayerRebel, game.PlayerRoyal, game.PlayerNative:
		case "":
			kind = game.PlayerEuropean
		default:
			return nil, fmt.Errorf("%w: unknown player kind %q", ErrInvalidRequest, s.Kind)
		}
		nation := s.Nation
		if nation == "" {
			nation = id
		}
		out = append(out, &game.Player{ID: id, Nation: nation, Kind: kind})
	}
	return out, nil
}
