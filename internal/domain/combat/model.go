// Package combat computes combat odds from stacked modifiers and turns a
// single random draw into an ordered list of results.
package combat

import (
	"newworld/internal/domain/game"
	"newworld/internal/domain/modifier"
	"newworld/internal/domain/world"
)

// Percentages used by the standard rules.
const (
	VeteranBonus         = 50
	AttackBonus          = 50
	FortifiedBonus       = 50
	ArtilleryInOpen      = -75
	ArtilleryAgainstRaid = 100
	CargoPenaltyPerSlot  = -12.5
	BombardBonus         = 75
)

// Default sub-decision thresholds applied to the rescaled draw.
const (
	DefaultConvertProbability = 0.15
	DefaultBurnProbability    = 0.5
)

type Model struct {
	Game *game.Game
	// ConvertProbability is the chance a European victory over a native
	// settlement also wins a convert.
	ConvertProbability float64
	// BurnProbability is the chance a native victory burns the loser's
	// missions.
	BurnProbability float64
}

func NewModel(g *game.Game) *Model {
	if g == nil {
		panic("combat: nil game")
	}
	return &Model{Game: g, ConvertProbability: DefaultConvertProbability, BurnProbability: DefaultBurnProbability}
}

// Odds is a preview of one attack.
type Odds struct {
	Offence float64 `json:"offence"`
	Defence float64 `json:"defence"`
	Win     float64 `json:"win"`
}

func newOdds(off, def float64) Odds {
	if off < 0 {
		off = 0
	}
	if def < 0 {
		def = 0
	}
	o := Odds{Offence: off, Defence: def, Win: 0.5}
	if off+def > 0 {
		o.Win = off / (off + def)
	}
	return o
}

// IsAttack reports whether attacker may fight defender at all: ships fight
// ships, land units fight land units.
func (m *Model) IsAttack(attacker, defender *game.Unit) bool {
	if attacker == nil || defender == nil || attacker.OwnerID == defender.OwnerID {
		return false
	}
	return attacker.IsNaval() == defender.IsNaval()
}

func (m *Model) CalculateCombatOdds(attacker, defender *game.Unit) Odds {
	if !m.IsAttack(attacker, defender) {
		return newOdds(0, 0)
	}
	return newOdds(m.OffencePower(attacker, defender), m.DefencePower(attacker, defender))
}

// BombardOdds previews a settlement firing on a ship.
func (m *Model) BombardOdds(s *game.Settlement, ship *game.Unit) Odds {
	if s == nil || ship == nil || !ship.IsNaval() || !s.CanBombard() {
		return newOdds(0, 0)
	}
	return newOdds(m.BombardPower(s), m.DefencePower(nil, ship))
}

func (m *Model) OffencePower(attacker, defender *game.Unit) float64 {
	return m.OffenceModifiers(attacker, defender).Apply(0)
}

func (m *Model) DefencePower(attacker, defender *game.Unit) float64 {
	return m.DefenceModifiers(attacker, defender).Apply(0)
}

// BombardPower is the stockade's own strength plus every bombarding unit
// inside the colony.
func (m *Model) BombardPower(s *game.Settlement) float64 {
	power := s.BombardStrength()
	for _, u := range m.Game.UnitsAt(s.Position()) {
		if u.Has(game.AbilityBombard) && u.OwnerID == s.OwnerID {
			power += u.Type().Offence
		}
	}
	return power
}

func (m *Model) OffenceModifiers(attacker, defender *game.Unit) modifier.Set {
	set := modifier.Set{}
	ut := attacker.Type()
	set.Add(modifier.New(modifier.Offence, modifier.Additive, ut.Offence, string(ut.ID), modifier.IndexBase))
	if r := attacker.Role(); r.Offence != 0 {
		set.Add(modifier.New(modifier.Offence, modifier.Additive, r.Offence, string(r.ID), modifier.IndexRole))
	}
	if attacker.Has(game.AbilityVeteran) && attacker.IsArmed() {
		set.Add(modifier.New(modifier.Veteran, modifier.Percentage, VeteranBonus, string(ut.ID), modifier.IndexUnitNormal))
	}
	if defender == nil {
		return set
	}

	owner := m.Game.Owner(attacker)
	if attacker.IsNaval() {
		if owner != nil && owner.NavalOffenceBonus != 0 {
			set.Add(modifier.New(modifier.NavalBonus, modifier.Percentage, float64(owner.NavalOffenceBonus), owner.ID, modifier.IndexGeneral))
		}
		if p := cargoPenalty(m.Game, attacker); p != 0 {
			set.Add(modifier.New(modifier.CargoPenalty, modifier.Percentage, p, attacker.ID, modifier.IndexGeneral))
		}
		return set
	}

	set.Add(modifier.New(modifier.AttackBonus, modifier.Percentage, AttackBonus, "attack", modifier.IndexGeneral))
	if owner != nil && owner.OffenceAgainstNatives != 0 {
		if d := m.Game.Owner(defender); d != nil && d.IsNative() {
			set.Add(modifier.New(modifier.OffenceAgainst, modifier.Percentage, float64(owner.OffenceAgainstNatives), owner.ID, modifier.IndexGeneral))
		}
	}

	tile := m.Game.TileOf(defender)
	settlement := m.Game.SettlementAt(defender.Position())
	if settlement == nil {
		bonus := tile.DefenceBonus()
		if bonus != 0 && (attacker.Has(game.AbilityAmbushBonus) || defender.Has(game.AbilityAmbushPenalty)) {
			set.Add(modifier.New(modifier.Ambush, modifier.Percentage, float64(bonus), tile.TypeID, modifier.IndexTerrain))
		}
		if attacker.Has(game.AbilityBombard) {
			set.Add(modifier.New(modifier.ArtilleryInOpen, modifier.Percentage, ArtilleryInOpen, string(ut.ID), modifier.IndexTerrain))
		}
	} else {
		if attacker.Has(game.AbilityBombard) {
			set.Add(modifier.New(modifier.Bombard, modifier.Percentage, BombardBonus, string(ut.ID), modifier.IndexGeneral))
		}
		if support := popularSupport(owner, m.Game.Player(settlement.OwnerID), settlement); support != 0 {
			set.Add(modifier.New(modifier.PopularSupport, modifier.Percentage, float64(support), settlement.ID, modifier.IndexSettlement))
		}
	}
	return set
}

func (m *Model) DefenceModifiers(attacker, defender *game.Unit) modifier.Set {
	set := modifier.Set{}
	ut := defender.Type()
	set.Add(modifier.New(modifier.Defence, modifier.Additive, ut.Defence, string(ut.ID), modifier.IndexBase))
	if defender.IsNaval() {
		if p := cargoPenalty(m.Game, defender); p != 0 {
			set.Add(modifier.New(modifier.CargoPenalty, modifier.Percentage, p, defender.ID, modifier.IndexGeneral))
		}
		return set
	}

	role := defender.Role()
	settlement := m.Game.SettlementAt(defender.Position())
	if role.IsDefault() && m.autoEquips(defender, settlement) {
		role = game.RoleByID(autoEquipRole(settlement))
		set.Add(modifier.New(modifier.AutoEquip, modifier.Additive, role.Defence, settlement.ID, modifier.IndexRole))
	} else if role.Defence != 0 {
		set.Add(modifier.New(modifier.Defence, modifier.Additive, role.Defence, string(role.ID), modifier.IndexRole))
	}
	if defender.Has(game.AbilityVeteran) && role.HasEquipment(game.EquipMuskets) {
		set.Add(modifier.New(modifier.Veteran, modifier.Percentage, VeteranBonus, string(ut.ID), modifier.IndexUnitNormal))
	}

	if settlement == nil {
		tile := m.Game.TileOf(defender)
		if defender.State == game.StateFortified {
			set.Add(modifier.New(modifier.Fortified, modifier.Percentage, FortifiedBonus, defender.ID, modifier.IndexGeneral))
		}
		if bonus := tile.DefenceBonus(); bonus != 0 {
			set.Add(modifier.New(modifier.TerrainDef, modifier.Percentage, float64(bonus), tile.TypeID, modifier.IndexTerrain))
		}
		if defender.Has(game.AbilityBombard) {
			set.Add(modifier.New(modifier.ArtilleryInOpen, modifier.Percentage, ArtilleryInOpen, string(ut.ID), modifier.IndexTerrain))
		}
		return set
	}

	// Units inside a settlement count as fortified unless walls already
	// protect them.
	if !settlement.HasStockade() {
		set.Add(modifier.New(modifier.Fortified, modifier.Percentage, FortifiedBonus, settlement.ID, modifier.IndexGeneral))
	}
	if bonus := settlement.DefenceBonus(); bonus != 0 {
		set.Add(modifier.New(modifier.SettlementDef, modifier.Percentage, float64(bonus), settlement.ID, modifier.IndexSettlement))
	}
	if defender.Has(game.AbilityBombard) && attacker != nil {
		if a := m.Game.Owner(attacker); a != nil && a.IsNative() {
			set.Add(modifier.New(modifier.ArtilleryAgainst, modifier.Percentage, ArtilleryAgainstRaid, string(ut.ID), modifier.IndexSettlement))
		}
	}
	return set
}

// autoEquips reports whether an unarmed defender picks up stored muskets.
// Only units that can take a military role do.
func (m *Model) autoEquips(defender *game.Unit, s *game.Settlement) bool {
	if s == nil || defender.IsArmed() || !defender.Has(game.AbilityCanBeEquipped) {
		return false
	}
	if !s.CanAutoEquip() || s.OwnerID != defender.OwnerID {
		return false
	}
	if s.IsNative() {
		return true
	}
	owner := m.Game.Owner(defender)
	return owner != nil && owner.AutomaticEquipment
}

func autoEquipRole(s *game.Settlement) game.RoleID {
	if s.IsNative() {
		return game.RoleArmedBrave
	}
	return game.RoleSoldier
}

// cargoPenalty is the percentage lost for every occupied cargo slot.
func cargoPenalty(g *game.Game, ship *game.Unit) float64 {
	slots := ship.GoodsSlots() + len(g.UnitsAboard(ship.ID))
	return float64(slots) * CargoPenaltyPerSlot
}

// popularSupport favours the crown in colonies with few rebels and the
// rebels in crown-held colonies with many.
func popularSupport(attacker, holder *game.Player, s *game.Settlement) int {
	if attacker == nil || holder == nil || !s.IsColony() {
		return 0
	}
	switch {
	case attacker.Kind == game.PlayerRoyal && holder.Kind == game.PlayerRebel:
		return 100 - s.SonsOfLiberty
	case attacker.Kind == game.PlayerRebel && holder.Kind == game.PlayerRoyal:
		return s.SonsOfLiberty
	}
	return 0
}

// DefenderAt picks the unit with the highest defence power on a tile
// against attacker. Ships only defend against ships. Ties go to the lower
// id.
func (m *Model) DefenderAt(attacker *game.Unit, p world.Position) *game.Unit {
	var (
		best  *game.Unit
		power float64
	)
	for _, d := range m.Game.UnitsAt(p) {
		if !m.IsAttack(attacker, d) {
			continue
		}
		dp := m.DefencePower(attacker, d)
		if best == nil || dp > power {
			best, power = d, dp
		}
	}
	return best
}
