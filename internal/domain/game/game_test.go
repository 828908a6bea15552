package game

import (
	"errors"
	"testing"

	"newworld/internal/domain/world"
)

func newTestGame() *Game {
	g := New("g-1", world.NewMap(6, 6, world.TypePlains))
	g.Map.Tile(0, 0).TypeID = world.TypeOcean
	g.AddPlayer(&Player{ID: "dutch", Kind: PlayerEuropean})
	g.AddPlayer(&Player{ID: "arawak", Kind: PlayerNative})
	return g
}

func TestGame_UnitsAtExcludesCargoAndSortsByID(t *testing.T) {
	g := newTestGame()
	g.AddUnit(&Unit{ID: "b", TypeID: FreeColonist, OwnerID: "dutch", X: 2, Y: 2})
	g.AddUnit(&Unit{ID: "a", TypeID: FreeColonist, OwnerID: "dutch", X: 2, Y: 2})
	g.AddUnit(&Unit{ID: "ship", TypeID: Caravel, OwnerID: "dutch", X: 0, Y: 0})
	g.AddUnit(&Unit{ID: "c", TypeID: FreeColonist, OwnerID: "dutch", X: 0, Y: 0, CarrierID: "ship"})

	units := g.UnitsAt(world.Position{X: 2, Y: 2})
	if len(units) != 2 || units[0].ID != "a" || units[1].ID != "b" {
		t.Fatalf("unexpected units at (2,2): %+v", units)
	}
	if got := len(g.UnitsAt(world.Position{X: 0, Y: 0})); got != 1 {
		t.Fatalf("expected only the ship on the ocean tile, got %d", got)
	}
	if got := g.SpaceLeft(g.Unit("ship")); got != 1 {
		t.Fatalf("expected one free slot, got %d", got)
	}
}

func TestGame_RemoveUnitDropsCargo(t *testing.T) {
	g := newTestGame()
	g.AddUnit(&Unit{ID: "ship", TypeID: Caravel, OwnerID: "dutch"})
	g.AddUnit(&Unit{ID: "c", TypeID: FreeColonist, OwnerID: "dutch", CarrierID: "ship"})
	g.RemoveUnit("ship")
	if len(g.Units) != 0 {
		t.Fatalf("expected ship and cargo removed, left %d", len(g.Units))
	}
}

func TestGame_SettlementLinksTile(t *testing.T) {
	g := newTestGame()
	g.AddSettlement(&Settlement{ID: "col", Kind: KindColony, OwnerID: "dutch", X: 0, Y: 1})
	if s := g.SettlementAt(world.Position{X: 0, Y: 1}); s == nil || s.ID != "col" {
		t.Fatalf("expected colony at (0,1)")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if g.RepairLocation("dutch") == nil {
		t.Fatalf("expected coastal colony to be a repair location")
	}
	g.RemoveSettlement("col")
	if g.Map.Tile(0, 1).SettlementID != "" {
		t.Fatalf("expected tile cleared after removal")
	}
}

func TestGame_ValidateRejectsUnknownOwner(t *testing.T) {
	g := newTestGame()
	g.AddUnit(&Unit{ID: "x", TypeID: FreeColonist, OwnerID: "nobody", X: 1, Y: 1})
	if err := g.Validate(); !errors.Is(err, ErrInvalidGame) {
		t.Fatalf("expected ErrInvalidGame, got %v", err)
	}
}

func TestGame_CloneIsIndependent(t *testing.T) {
	g := newTestGame()
	SetStance(g.Player("dutch"), g.Player("arawak"), StanceWar)
	g.AddUnit(&Unit{ID: "u", TypeID: FreeColonist, OwnerID: "dutch", X: 1, Y: 1})
	c := g.Clone()
	c.Unit("u").X = 4
	SetStance(c.Player("dutch"), c.Player("arawak"), StancePeace)
	if g.Unit("u").X != 1 {
		t.Fatalf("clone shares units")
	}
	if !g.Player("dutch").AtWarWith("arawak") {
		t.Fatalf("clone shares stances")
	}
}

func TestUnit_RolesAndMoves(t *testing.T) {
	u := &Unit{TypeID: FreeColonist, RoleID: RoleDragoon}
	if !u.IsArmed() || !u.IsMounted() || !u.IsOffensive() || !u.IsDefensive() {
		t.Fatalf("dragoon should be armed, mounted, offensive and defensive")
	}
	if got := u.InitialMoves(); got != 12 {
		t.Fatalf("dragoon moves = %d, want 12", got)
	}
	plain := &Unit{TypeID: FreeColonist}
	if plain.IsOffensive() || plain.IsDefensive() {
		t.Fatalf("plain colonist should be neither offensive nor defensive")
	}
	if got := RoleByID(RoleDragoon).LostEquipment(); len(got) != 1 || got[0] != EquipHorses {
		t.Fatalf("dragoon should lose horses first, got %v", got)
	}
	if got := CaptureRole(RoleDefault, []Equipment{EquipMuskets}); got != RoleArmedBrave {
		t.Fatalf("capturing muskets should arm a brave, got %s", got)
	}
	if got := CaptureRole(RoleArmedBrave, []Equipment{EquipHorses}); got != RoleNativeDragoon {
		t.Fatalf("armed brave capturing horses should become a native dragoon, got %s", got)
	}
}
