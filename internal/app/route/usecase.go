package route

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/pathfind"
)

var ErrInvalidRequest = errors.New("invalid route request")

const DefaultMaxTurns = 8

type UseCase struct {
	Games    ports.GameRepository
	Metrics  ports.RouteMetrics
	MaxTurns int
}

// Path finds the cheapest path for a unit to a target tile.
func (u UseCase) Path(ctx context.Context, req PathRequest) (Response, error) {
	g, unit, carrier, err := u.load(ctx, req.GameID, req.UnitID, req.CarrierID)
	if err != nil {
		return Response{}, err
	}
	start := g.TileOf(unit)
	end := g.Map.TileAt(req.Target)
	if end == nil || start == end {
		return Response{}, ErrInvalidRequest
	}

	path := pathfind.NewFinder(g).FindPath(unit, start, end, carrier, nil)
	u.record(path != nil)
	return toResponse(path), nil
}

// Search runs a goal search from the unit's tile. The returned steps
// start at the unit's own tile.
func (u UseCase) Search(ctx context.Context, req SearchRequest) (Response, error) {
	g, unit, carrier, err := u.load(ctx, req.GameID, req.UnitID, req.CarrierID)
	if err != nil {
		return Response{}, err
	}
	gd, err := goalFor(g, req.Goal)
	if err != nil {
		return Response{}, err
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = u.MaxTurns
	}
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	path := pathfind.NewFinder(g).Search(unit, g.TileOf(unit), gd, nil, maxTurns, carrier)
	u.record(path != nil)
	return toResponse(path), nil
}

func (u UseCase) load(ctx context.Context, gameID, unitID, carrierID string) (*game.Game, *game.Unit, *game.Unit, error) {
	gameID = strings.TrimSpace(gameID)
	unitID = strings.TrimSpace(unitID)
	if gameID == "" || unitID == "" {
		return nil, nil, nil, ErrInvalidRequest
	}
	g, err := u.Games.GetByID(ctx, gameID)
	if err != nil {
		return nil, nil, nil, err
	}
	unit := g.Unit(unitID)
	if unit == nil {
		return nil, nil, nil, fmt.Errorf("unit %s: %w", unitID, ports.ErrNotFound)
	}
	var carrier *game.Unit
	if carrierID = strings.TrimSpace(carrierID); carrierID != "" {
		carrier = g.Unit(carrierID)
		if carrier == nil {
			return nil, nil, nil, fmt.Errorf("carrier %s: %w", carrierID, ports.ErrNotFound)
		}
		if unit.IsNaval() || !carrier.CanCarry(unit) || carrier.OwnerID != unit.OwnerID {
			return nil, nil, nil, ErrInvalidRequest
		}
	}
	return g, unit, carrier, nil
}

func (u UseCase) record(found bool) {
	if u.Metrics != nil {
		u.Metrics.RecordPath(found)
	}
}

func goalFor(g *game.Game, goal Goal) (pathfind.GoalDecider, error) {
	switch goal {
	case GoalSettlement:
		return pathfind.OwnSettlementGoal(g), nil
	case GoalCoast:
		return pathfind.CoastGoal(g), nil
	case GoalResource:
		return &pathfind.ScoredGoal{Score: func(_ *game.Unit, n *pathfind.PathNode) int {
			if n.Tile.Resource == "" || n.Tile.HasSettlement() {
				return 0
			}
			return 1
		}}, nil
	default:
		return nil, ErrInvalidRequest
	}
}

func toResponse(path *pathfind.PathNode) Response {
	if path == nil {
		return Response{Steps: []Step{}}
	}
	out := Response{Found: true}
	for _, n := range path.Steps() {
		out.Steps = append(out.Steps, Step{
			X:         n.Tile.X,
			Y:         n.Tile.Y,
			Cost:      n.Cost,
			Turns:     n.Turns,
			MovesLeft: n.MovesLeft,
			OnCarrier: n.OnCarrier,
		})
	}
	last := path.Last()
	out.Cost, out.Turns = last.Cost, last.Turns
	return out
}
