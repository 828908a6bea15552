package combat

import (
	"newworld/internal/domain/game"
)

// Band widths of the draw. A win below greatFraction of the win chance is
// great; a loss in the top greatFraction of the loss band is great. Ships
// evade in the bottom evadeFraction of the loss band.
const (
	greatFraction = 0.1
	evadeFraction = 0.2
)

type draw struct {
	win, great, evade bool
	// residual is the draw rescaled to [0,1) within its band.
	residual float64
}

func partition(p, r float64, canEvade bool) draw {
	if r < 0 {
		r = 0
	}
	if r >= 1 {
		r = 0.999999
	}
	if r < p {
		return draw{win: true, great: r < greatFraction*p, residual: r / p}
	}
	s := (r - p) / (1 - p)
	if canEvade && s < evadeFraction {
		return draw{evade: true, residual: s / evadeFraction}
	}
	return draw{great: s >= 1-greatFraction, residual: s}
}

// GenerateAttackResult resolves attacker against defender with a single
// draw r in [0,1). It does not change the game.
func (m *Model) GenerateAttackResult(attacker, defender *game.Unit, r float64) Results {
	if !m.IsAttack(attacker, defender) {
		return Results{NoResult}
	}
	odds := m.CalculateCombatOdds(attacker, defender)
	naval := attacker.IsNaval()
	d := partition(odds.Win, r, naval && defender.Has(game.AbilityEvadeAttack))
	switch {
	case d.evade:
		return Results{NoResult, EvadeAttack}
	case naval && d.win:
		return m.navalDefeat(Results{Win}, attacker, defender, d.great)
	case naval:
		return m.navalDefeat(Results{Lose}, defender, attacker, d.great)
	case d.win:
		return m.landWin(attacker, defender, d)
	default:
		return m.landLoss(attacker, defender, d)
	}
}

// GenerateBombardResult resolves a settlement firing on a passing ship.
func (m *Model) GenerateBombardResult(s *game.Settlement, ship *game.Unit, r float64) Results {
	if s == nil || ship == nil || !ship.IsNaval() || !s.CanBombard() || s.OwnerID == ship.OwnerID {
		return Results{NoResult}
	}
	d := partition(m.BombardOdds(s, ship).Win, r, false)
	if !d.win {
		return Results{NoResult, EvadeBombard}
	}
	if d.great || m.Game.RepairLocation(ship.OwnerID) == nil {
		return Results{Win, SinkShipBombard}
	}
	return Results{Win, DamageShipBombard}
}

func (m *Model) navalDefeat(out Results, winner, loser *game.Unit, great bool) Results {
	if winner.Has(game.AbilityCaptureGoods) && loser.Goods > 0 {
		out = append(out, LootShip)
	}
	if great || m.Game.RepairLocation(loser.OwnerID) == nil {
		return append(out, SinkShipAttack)
	}
	return append(out, DamageShipAttack)
}

func (m *Model) landWin(attacker, defender *game.Unit, d draw) Results {
	out := Results{Win}
	s := m.Game.SettlementAt(defender.Position())
	switch {
	case s != nil && s.IsColony():
		out = m.colonyDefeat(out, attacker, defender, s)
	case s != nil:
		out = m.settlementDefeat(out, attacker, defender, s, d)
	default:
		out = m.fieldDefeat(out, attacker, defender)
	}

	aOwner, dOwner := m.Game.Owner(attacker), m.Game.Owner(defender)
	if aOwner != nil && dOwner != nil && aOwner.IsNative() && dOwner.IsEuropean() &&
		d.residual < m.BurnProbability && len(m.Game.MissionsOf(dOwner.ID, aOwner.ID)) > 0 {
		out = append(out, BurnMissions)
	}
	if d.great && m.canPromote(attacker) {
		out = append(out, PromoteUnit)
	}
	return out
}

func (m *Model) landLoss(attacker, defender *game.Unit, d draw) Results {
	out := Results{Lose}
	if m.autoEquips(defender, m.Game.SettlementAt(defender.Position())) {
		out = append(out, AutoEquipUnit)
	}
	out = append(out, m.unitDefeat(defender, attacker)...)
	if d.great && m.canPromote(defender) {
		out = append(out, PromoteUnit)
	}
	return out
}

// colonyDefeat handles a win over a colony defender. The colony falls once
// its defender cannot fight back.
func (m *Model) colonyDefeat(out Results, attacker, defender *game.Unit, s *game.Settlement) Results {
	switch {
	case defender.IsArmed() || defender.IsMounted():
		return append(out, m.equipmentLoss(attacker)...)
	case m.autoEquips(defender, s):
		if m.capturesEquipment(attacker) {
			return append(out, CaptureAutoEquip)
		}
		return append(out, LoseAutoEquip)
	case defender.IsDefensive():
		return append(out, m.unitDefeat(attacker, defender)...)
	}

	owner := m.Game.Owner(attacker)
	if owner != nil && owner.IsEuropean() {
		out = append(out, m.shipsInPort(s)...)
		return append(out, CaptureColony)
	}
	switch {
	case s.CanBePillaged():
		return append(out, PillageColony)
	case m.Game.Population(s) > 1:
		return append(out, SlaughterUnit)
	default:
		out = append(out, m.shipsInPort(s)...)
		return append(out, DestroyColony)
	}
}

func (m *Model) settlementDefeat(out Results, attacker, defender *game.Unit, s *game.Settlement, d draw) Results {
	switch {
	case defender.IsArmed() || defender.IsMounted():
		out = append(out, m.equipmentLoss(attacker)...)
	case m.autoEquips(defender, s):
		out = append(out, LoseAutoEquip)
	default:
		out = append(out, SlaughterUnit)
		if m.lastDefender(defender, s) {
			out = append(out, DestroySettlement)
		}
	}
	if owner := m.Game.Owner(attacker); owner != nil && owner.IsEuropean() && d.residual < m.ConvertProbability && !out.Has(DestroySettlement) {
		out = append(out, CaptureConvert)
	}
	return out
}

func (m *Model) fieldDefeat(out Results, attacker, defender *game.Unit) Results {
	if defender.IsArmed() || defender.IsMounted() {
		return append(out, m.equipmentLoss(attacker)...)
	}
	if owner := m.Game.Owner(attacker); owner != nil && owner.IsEuropean() && defender.Has(game.AbilityCanBeCaptured) {
		return append(out, CaptureUnit)
	}
	return append(out, m.unitDefeat(attacker, defender)...)
}

// unitDefeat is the loss suffered by loser when it has nothing else to give
// up: equipment first, then demotion, then the unit itself.
func (m *Model) unitDefeat(winner, loser *game.Unit) Results {
	switch {
	case loser.IsArmed() || loser.IsMounted():
		return m.equipmentLoss(winner)
	case loser.Type().Demotion != "":
		return Results{DemoteUnit}
	default:
		return Results{SlaughterUnit}
	}
}

func (m *Model) equipmentLoss(winner *game.Unit) Results {
	if m.capturesEquipment(winner) {
		return Results{CaptureEquip}
	}
	return Results{LoseEquip}
}

func (m *Model) capturesEquipment(u *game.Unit) bool {
	owner := m.Game.Owner(u)
	return owner != nil && owner.IsNative() && u.Has(game.AbilityCaptureEquip)
}

func (m *Model) canPromote(u *game.Unit) bool {
	promo := u.Type().Promotion
	if promo == "" {
		return false
	}
	owner := m.Game.Owner(u)
	if owner == nil || owner.IsNative() {
		return false
	}
	return !u.Type().PromotionNeedsIndependence || owner.Kind == game.PlayerRebel
}

func (m *Model) lastDefender(defender *game.Unit, s *game.Settlement) bool {
	for _, u := range m.Game.UnitsAt(s.Position()) {
		if u.ID != defender.ID && u.OwnerID == s.OwnerID && !u.IsNaval() {
			return false
		}
	}
	return true
}

// shipsInPort damages the colony owner's ships when they have somewhere
// else to be repaired, and sinks them otherwise.
func (m *Model) shipsInPort(s *game.Settlement) Results {
	ships := false
	for _, u := range m.Game.UnitsAt(s.Position()) {
		if u.IsNaval() && u.OwnerID == s.OwnerID {
			ships = true
			break
		}
	}
	if !ships {
		return nil
	}
	if m.repairElsewhere(s) != nil {
		return Results{DamageColonyShips}
	}
	return Results{SinkColonyShips}
}

func (m *Model) repairElsewhere(s *game.Settlement) *game.Settlement {
	for _, c := range m.Game.SettlementsOf(s.OwnerID) {
		if c.ID != s.ID && c.IsColony() && m.Game.Map.IsCoastal(m.Game.Map.TileAt(c.Position())) {
			return c
		}
	}
	return nil
}
