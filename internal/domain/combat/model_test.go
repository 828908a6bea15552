package combat

import (
	"testing"

	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

func TestCalculateCombatOdds_EqualPowersGiveHalf(t *testing.T) {
	g := battleGame()
	a := addUnit(g, "a", game.FreeColonist, game.RoleSoldier, "dutch", 2, 2)
	d := addUnit(g, "d", game.VeteranSoldier, game.RoleSoldier, "english", 3, 2)
	m := NewModel(g)

	odds := m.CalculateCombatOdds(a, d)
	if !approx(odds.Offence, 3) || !approx(odds.Defence, 3) {
		t.Fatalf("expected 3 vs 3, got %+v", odds)
	}
	if odds.Win != 0.5 {
		t.Fatalf("expected 0.5, got %v", odds.Win)
	}
	if o := newOdds(0, 0); o.Win != 0.5 {
		t.Fatalf("zero powers should give 0.5, got %v", o.Win)
	}
}

func TestOffence_PercentagesAtSameIndexAreSummed(t *testing.T) {
	g := battleGame()
	g.Player("dutch").OffenceAgainstNatives = 50
	a := addUnit(g, "a", game.VeteranSoldier, game.RoleSoldier, "dutch", 2, 2)
	d := addUnit(g, "d", game.Brave, game.RoleDefault, "arawak", 3, 2)

	// 2 from the role, +50% veteran, then +50% attack and +50% against
	// natives applied together.
	if got := NewModel(g).OffencePower(a, d); !approx(got, 6) {
		t.Fatalf("offence = %v, want 6", got)
	}
}

func TestOffence_ArtilleryInTheOpen(t *testing.T) {
	g := battleGame()
	a := addUnit(g, "a", game.Artillery, game.RoleDefault, "dutch", 2, 2)
	d := addUnit(g, "d", game.Brave, game.RoleDefault, "arawak", 3, 2)
	if got := NewModel(g).OffencePower(a, d); !approx(got, 2.625) {
		t.Fatalf("offence = %v, want 2.625", got)
	}
}

func TestOffence_PopularSupport(t *testing.T) {
	g := battleGame()
	g.AddSettlement(&game.Settlement{ID: "boston", Kind: game.KindColony, OwnerID: "rebels", X: 3, Y: 2, SonsOfLiberty: 80})
	a := addUnit(g, "a", game.KingsRegular, game.RoleSoldier, "crown", 2, 2)
	d := addUnit(g, "d", game.FreeColonist, game.RoleDefault, "rebels", 3, 2)
	set := NewModel(g).OffenceModifiers(a, d)
	support := set.ByID("model.modifier.popularSupport")
	if len(support) != 1 || support[0].Value != 20 {
		t.Fatalf("expected 20%% popular support, got %+v", support)
	}
}

func TestDefence_FortifiedOnHills(t *testing.T) {
	g := battleGame()
	g.Map.Tile(3, 2).TypeID = world.TypeHills
	a := addUnit(g, "a", game.FreeColonist, game.RoleSoldier, "english", 2, 2)
	d := addUnit(g, "d", game.FreeColonist, game.RoleSoldier, "dutch", 3, 2)
	d.State = game.StateFortified

	if got := NewModel(g).DefencePower(a, d); !approx(got, 6) {
		t.Fatalf("defence = %v, want 6", got)
	}
}

func TestDefence_StockadeReplacesFortification(t *testing.T) {
	g := battleGame()
	col := &game.Settlement{ID: "col", Kind: game.KindColony, OwnerID: "dutch", X: 3, Y: 2}
	g.AddSettlement(col)
	a := addUnit(g, "a", game.FreeColonist, game.RoleSoldier, "english", 2, 2)
	d := addUnit(g, "d", game.FreeColonist, game.RoleSoldier, "dutch", 3, 2)
	m := NewModel(g)

	if got := m.DefencePower(a, d); !approx(got, 3) {
		t.Fatalf("open colony defence = %v, want 3", got)
	}
	col.Stockade = game.StockadeFort
	if got := m.DefencePower(a, d); !approx(got, 5) {
		t.Fatalf("fort defence = %v, want 5", got)
	}
}

func TestDefence_AutomaticEquipment(t *testing.T) {
	g := battleGame()
	g.Player("dutch").AutomaticEquipment = true
	g.AddSettlement(&game.Settlement{ID: "col", Kind: game.KindColony, OwnerID: "dutch", X: 3, Y: 2, Muskets: 100})
	a := addUnit(g, "a", game.Brave, game.RoleDefault, "arawak", 2, 2)
	d := addUnit(g, "d", game.FreeColonist, game.RoleDefault, "dutch", 3, 2)

	set := NewModel(g).DefenceModifiers(a, d)
	if !set.Has("model.modifier.automaticEquipment") {
		t.Fatalf("expected automatic equipment modifier, got %+v", set)
	}
	if got := set.Apply(0); !approx(got, 3) {
		t.Fatalf("defence = %v, want 3", got)
	}
}

func TestDefence_ShipCargoPenalty(t *testing.T) {
	g := battleGame()
	a := addUnit(g, "a", game.Frigate, game.RoleDefault, "dutch", 7, 2)
	d := addUnit(g, "d", game.Merchantman, game.RoleDefault, "english", 8, 2)
	d.Goods = 200
	if got := NewModel(g).DefencePower(a, d); !approx(got, 4.5) {
		t.Fatalf("defence = %v, want 4.5", got)
	}
}

func TestCalculateCombatOdds_AlwaysWithinUnitInterval(t *testing.T) {
	land := []game.UnitTypeID{game.FreeColonist, game.VeteranSoldier, game.KingsRegular, game.Artillery, game.DamagedArtillery, game.Brave, game.WagonTrain}
	roles := []game.RoleID{game.RoleDefault, game.RoleSoldier, game.RoleDragoon}
	naval := []game.UnitTypeID{game.Caravel, game.Privateer, game.Frigate, game.ManOWar}
	terrain := []string{world.TypePlains, world.TypeHills, world.TypeForest, world.TypeMountains}

	check := func(m *Model, a, d *game.Unit) {
		odds := m.CalculateCombatOdds(a, d)
		if odds.Win < 0 || odds.Win > 1 {
			t.Fatalf("%s vs %s: odds %v out of range", a.TypeID, d.TypeID, odds.Win)
		}
	}
	for _, tt := range terrain {
		g := battleGame()
		g.Map.Tile(3, 2).TypeID = tt
		m := NewModel(g)
		for _, at := range land {
			for _, dt := range land {
				for _, r := range roles {
					a := addUnit(g, "a", at, r, "dutch", 2, 2)
					d := addUnit(g, "d", dt, r, "arawak", 3, 2)
					check(m, a, d)
				}
			}
		}
	}
	g := battleGame()
	m := NewModel(g)
	for _, at := range naval {
		for _, dt := range naval {
			a := addUnit(g, "a", at, game.RoleDefault, "dutch", 7, 2)
			d := addUnit(g, "d", dt, game.RoleDefault, "english", 8, 2)
			d.Goods = 600
			check(m, a, d)
		}
	}
}

func TestCalculateCombatOdds_InvalidPairs(t *testing.T) {
	g := battleGame()
	soldier := addUnit(g, "a", game.FreeColonist, game.RoleSoldier, "dutch", 2, 2)
	friend := addUnit(g, "b", game.FreeColonist, game.RoleDefault, "dutch", 3, 2)
	ship := addUnit(g, "c", game.Frigate, game.RoleDefault, "english", 7, 2)
	m := NewModel(g)

	if m.IsAttack(soldier, friend) || m.IsAttack(soldier, ship) {
		t.Fatalf("expected invalid attacks")
	}
	if o := m.CalculateCombatOdds(soldier, ship); o.Win != 0.5 || o.Offence != 0 {
		t.Fatalf("invalid pair should give empty odds, got %+v", o)
	}
}

func TestDefenderAt_PicksStrongest(t *testing.T) {
	g := battleGame()
	a := addUnit(g, "a", game.Brave, game.RoleDefault, "arawak", 2, 2)
	addUnit(g, "d1", game.FreeColonist, game.RoleDefault, "dutch", 3, 2)
	addUnit(g, "d2", game.FreeColonist, game.RoleSoldier, "dutch", 3, 2)
	addUnit(g, "d3", game.Caravel, game.RoleDefault, "dutch", 3, 2)

	d := NewModel(g).DefenderAt(a, world.Position{X: 3, Y: 2})
	if d == nil || d.ID != "d2" {
		t.Fatalf("expected the soldier to defend, got %+v", d)
	}
}
