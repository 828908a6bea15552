package observe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

var ErrInvalidRequest = errors.New("invalid observe request")

const (
	baseViewRadius  = 1
	scoutViewRadius = 2
)

type UseCase struct {
	Games ports.GameRepository
}

// Execute returns what a unit can see around itself. Tiles its owner has
// never explored are reported as unknown and hide their contents.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" || strings.TrimSpace(req.UnitID) == "" {
		return Response{}, ErrInvalidRequest
	}
	g, err := u.Games.GetByID(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}
	unit := g.Unit(req.UnitID)
	if unit == nil {
		return Response{}, fmt.Errorf("unit %s: %w", req.UnitID, ports.ErrNotFound)
	}

	center := unit.Position()
	radius := viewRadius(unit)
	owner := g.Owner(unit)
	resp := Response{
		UnitID:      unit.ID,
		MovesLeft:   unit.MovesLeft,
		View:        View{Center: center, Radius: radius},
		Tiles:       []ObservedTile{},
		Units:       []ObservedUnit{},
		Settlements: []ObservedSettlement{},
	}
	for y := center.Y - 2*radius; y <= center.Y+2*radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			t := g.Map.Tile(x, y)
			if t == nil || center.Distance(t.Position()) > radius {
				continue
			}
			if !t.IsExploredBy(unit.OwnerID) {
				resp.Tiles = append(resp.Tiles, ObservedTile{Pos: t.Position(), Type: "unknown"})
				continue
			}
			resp.Tiles = append(resp.Tiles, observeTile(g, unit, t))
			for _, other := range g.UnitsAt(t.Position()) {
				if other.ID == unit.ID || other.IsAboard() {
					continue
				}
				resp.Units = append(resp.Units, ObservedUnit{
					ID:      other.ID,
					Type:    string(other.TypeID),
					Role:    string(other.RoleID),
					Owner:   other.OwnerID,
					Pos:     other.Position(),
					Hostile: hostile(owner, other.OwnerID),
				})
			}
			if s := g.SettlementAt(t.Position()); s != nil {
				resp.Settlements = append(resp.Settlements, ObservedSettlement{
					ID:      s.ID,
					Name:    s.Name,
					Kind:    string(s.Kind),
					Owner:   s.OwnerID,
					Pos:     s.Position(),
					Hostile: hostile(owner, s.OwnerID),
				})
			}
		}
	}
	return resp, nil
}

func viewRadius(u *game.Unit) int {
	if u.IsNaval() || u.RoleID == game.RoleScout {
		return scoutViewRadius
	}
	return baseViewRadius
}

func observeTile(g *game.Game, u *game.Unit, t *world.Tile) ObservedTile {
	out := ObservedTile{
		Pos:        t.Position(),
		Type:       t.TypeID,
		Explored:   true,
		Resource:   t.Resource,
		Road:       t.Road,
		River:      int(t.River),
		Defence:    t.DefenceBonus(),
		Settlement: t.SettlementID,
	}
	if from := g.TileOf(u); from != nil && from.Position().Distance(t.Position()) == 1 {
		out.MoveCost = from.MoveCost(t)
	}
	return out
}

func hostile(owner *game.Player, other string) bool {
	return owner != nil && owner.ID != other && owner.AtWarWith(other)
}
