package game

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"newworld/internal/domain/world"
)

var ErrInvalidGame = errors.New("invalid game")

type Game struct {
	ID          string                 `json:"id"`
	Turn        int                    `json:"turn"`
	Map         *world.Map             `json:"map"`
	Players     map[string]*Player     `json:"players"`
	Units       map[string]*Unit       `json:"units"`
	Settlements map[string]*Settlement `json:"settlements"`
	Sequence    int                    `json:"sequence"`
	Version     int64                  `json:"version"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func New(id string, m *world.Map) *Game {
	return &Game{
		ID:          id,
		Turn:        1,
		Map:         m,
		Players:     map[string]*Player{},
		Units:       map[string]*Unit{},
		Settlements: map[string]*Settlement{},
	}
}

func (g *Game) Validate() error {
	if g == nil || g.ID == "" {
		return ErrInvalidGame
	}
	if err := g.Map.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGame, err)
	}
	for id, u := range g.Units {
		if _, ok := LookupUnitType(u.TypeID); !ok {
			return fmt.Errorf("%w: unit %s has unknown type %q", ErrInvalidGame, id, u.TypeID)
		}
		if _, ok := LookupRole(u.RoleID); !ok {
			return fmt.Errorf("%w: unit %s has unknown role %q", ErrInvalidGame, id, u.RoleID)
		}
		if _, ok := g.Players[u.OwnerID]; !ok {
			return fmt.Errorf("%w: unit %s has unknown owner %q", ErrInvalidGame, id, u.OwnerID)
		}
		if !g.Map.IsValid(u.Position()) {
			return fmt.Errorf("%w: unit %s off map at (%d,%d)", ErrInvalidGame, id, u.X, u.Y)
		}
		if u.CarrierID != "" {
			if _, ok := g.Units[u.CarrierID]; !ok {
				return fmt.Errorf("%w: unit %s aboard missing carrier %q", ErrInvalidGame, id, u.CarrierID)
			}
		}
	}
	for id, s := range g.Settlements {
		if _, ok := g.Players[s.OwnerID]; !ok {
			return fmt.Errorf("%w: settlement %s has unknown owner %q", ErrInvalidGame, id, s.OwnerID)
		}
		t := g.Map.TileAt(s.Position())
		if t == nil || t.SettlementID != id {
			return fmt.Errorf("%w: settlement %s not linked to its tile", ErrInvalidGame, id)
		}
	}
	return nil
}

func (g *Game) Player(id string) *Player {
	return g.Players[id]
}

func (g *Game) Unit(id string) *Unit {
	return g.Units[id]
}

func (g *Game) Owner(u *Unit) *Player {
	return g.Players[u.OwnerID]
}

func (g *Game) TileOf(u *Unit) *world.Tile {
	return g.Map.TileAt(u.Position())
}

func (g *Game) SettlementAt(p world.Position) *Settlement {
	t := g.Map.TileAt(p)
	if t == nil || t.SettlementID == "" {
		return nil
	}
	return g.Settlements[t.SettlementID]
}

// UnitsAt returns the units on a tile, ordered by id, excluding units
// aboard a carrier.
func (g *Game) UnitsAt(p world.Position) []*Unit {
	out := []*Unit{}
	for _, u := range g.Units {
		if u.X == p.X && u.Y == p.Y && u.CarrierID == "" {
			out = append(out, u)
		}
	}
	sortUnits(out)
	return out
}

func (g *Game) UnitsAboard(carrierID string) []*Unit {
	out := []*Unit{}
	for _, u := range g.Units {
		if u.CarrierID == carrierID {
			out = append(out, u)
		}
	}
	sortUnits(out)
	return out
}

// HasForeignUnits reports whether a tile holds units not owned by playerID.
func (g *Game) HasForeignUnits(p world.Position, playerID string) bool {
	for _, u := range g.UnitsAt(p) {
		if u.OwnerID != playerID {
			return true
		}
	}
	return false
}

func (g *Game) Population(s *Settlement) int {
	n := 0
	for _, u := range g.UnitsAt(s.Position()) {
		if u.State == StateWorking {
			n++
		}
	}
	return n
}

func (g *Game) SpaceLeft(carrier *Unit) int {
	left := carrier.Type().Space - carrier.GoodsSlots()
	for _, u := range g.UnitsAboard(carrier.ID) {
		left -= u.Type().SpaceTaken
	}
	return left
}

func (g *Game) SettlementsOf(playerID string) []*Settlement {
	out := []*Settlement{}
	for _, s := range g.Settlements {
		if s.OwnerID == playerID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RepairLocation is the first coastal colony of the player where a
// damaged ship can be sent.
func (g *Game) RepairLocation(playerID string) *Settlement {
	for _, s := range g.SettlementsOf(playerID) {
		if s.IsColony() && g.Map.IsCoastal(g.Map.TileAt(s.Position())) {
			return s
		}
	}
	return nil
}

// MissionsOf lists native settlements owned by nativeID hosting a
// missionary of playerID.
func (g *Game) MissionsOf(playerID, nativeID string) []*Settlement {
	out := []*Settlement{}
	for _, s := range g.SettlementsOf(nativeID) {
		if s.IsNative() && s.MissionaryOwner == playerID {
			out = append(out, s)
		}
	}
	return out
}

func (g *Game) AddPlayer(p *Player) {
	g.Players[p.ID] = p
}

func (g *Game) AddUnit(u *Unit) {
	if u.ID == "" {
		u.ID = g.NextID("unit")
	}
	g.Units[u.ID] = u
}

func (g *Game) AddSettlement(s *Settlement) {
	if s.ID == "" {
		s.ID = g.NextID("settlement")
	}
	g.Settlements[s.ID] = s
	if t := g.Map.TileAt(s.Position()); t != nil {
		t.SettlementID = s.ID
	}
}

// RemoveUnit deletes a unit together with anything it carries.
func (g *Game) RemoveUnit(id string) {
	for _, cargo := range g.UnitsAboard(id) {
		g.RemoveUnit(cargo.ID)
	}
	delete(g.Units, id)
}

func (g *Game) RemoveSettlement(id string) {
	s, ok := g.Settlements[id]
	if !ok {
		return
	}
	if t := g.Map.TileAt(s.Position()); t != nil && t.SettlementID == id {
		t.SettlementID = ""
	}
	delete(g.Settlements, id)
}

func (g *Game) NextID(prefix string) string {
	g.Sequence++
	return fmt.Sprintf("%s:%d", prefix, g.Sequence)
}

func (g *Game) Clone() *Game {
	out := &Game{
		ID:          g.ID,
		Turn:        g.Turn,
		Map:         g.Map.Clone(),
		Players:     make(map[string]*Player, len(g.Players)),
		Units:       make(map[string]*Unit, len(g.Units)),
		Settlements: make(map[string]*Settlement, len(g.Settlements)),
		Sequence:    g.Sequence,
		Version:     g.Version,
		UpdatedAt:   g.UpdatedAt,
	}
	for id, p := range g.Players {
		cp := *p
		if p.Stances != nil {
			cp.Stances = make(map[string]Stance, len(p.Stances))
			for k, v := range p.Stances {
				cp.Stances[k] = v
			}
		}
		out.Players[id] = &cp
	}
	for id, u := range g.Units {
		cu := *u
		out.Units[id] = &cu
	}
	for id, s := range g.Settlements {
		cs := *s
		out.Settlements[id] = &cs
	}
	return out
}

func sortUnits(units []*Unit) {
	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
}
