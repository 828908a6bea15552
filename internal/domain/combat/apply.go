package combat

import (
	"fmt"

	"newworld/internal/domain/game"
)

// Apply changes the game according to the results of attacker fighting
// defender. The attacker spends its remaining moves.
func (m *Model) Apply(attacker, defender *game.Unit, results Results) error {
	if attacker == nil || defender == nil {
		return fmt.Errorf("combat: apply needs both units")
	}
	var winner, loser *game.Unit
	switch results.Outcome() {
	case Win:
		winner, loser = attacker, defender
	case Lose:
		winner, loser = defender, attacker
	}
	attacker.MovesLeft = 0
	if winner == nil {
		return nil
	}

	// Captured settlements and ships are looked up before anything moves.
	settlement := m.Game.SettlementAt(defender.Position())
	winnerOwner, loserOwner := winner.OwnerID, loser.OwnerID

	for _, r := range results[1:] {
		switch r {
		case SlaughterUnit:
			m.slaughter(loser, settlement)
		case DemoteUnit:
			loser.TypeID = loser.Type().Demotion
		case PromoteUnit:
			if promo := winner.Type().Promotion; promo != "" {
				winner.TypeID = promo
			}
		case LoseEquip:
			loser.RoleID = downgrade(loser)
		case CaptureEquip:
			lost := loser.Role().LostEquipment()
			loser.RoleID = downgrade(loser)
			winner.RoleID = game.CaptureRole(winner.RoleID, lost)
		case LoseAutoEquip, CaptureAutoEquip:
			if settlement == nil {
				return fmt.Errorf("combat: %s without a settlement", r)
			}
			settlement.Muskets -= game.AutoEquipMuskets
			if r == CaptureAutoEquip {
				winner.RoleID = game.CaptureRole(winner.RoleID, []game.Equipment{game.EquipMuskets})
			}
		case AutoEquipUnit, EvadeAttack:
		case CaptureUnit:
			loser.OwnerID = winnerOwner
			if t := loser.Type().Captured; t != "" {
				loser.TypeID = t
			}
			loser.State = game.StateActive
			loser.MovesLeft = 0
			loser.SetPosition(winner.Position())
		case CaptureColony:
			if settlement == nil {
				return fmt.Errorf("combat: %s without a settlement", r)
			}
			m.captureColony(winner, settlement)
		case DamageColonyShips, SinkColonyShips:
			if settlement == nil {
				return fmt.Errorf("combat: %s without a settlement", r)
			}
			for _, ship := range m.shipsAt(settlement) {
				if r == SinkColonyShips {
					m.Game.RemoveUnit(ship.ID)
				} else {
					m.damageShip(ship, m.repairElsewhere(settlement))
				}
			}
		case DestroyColony, DestroySettlement:
			if settlement == nil {
				return fmt.Errorf("combat: %s without a settlement", r)
			}
			m.destroySettlement(settlement)
		case PillageColony:
			if settlement == nil {
				return fmt.Errorf("combat: %s without a settlement", r)
			}
			pillage(settlement)
		case CaptureConvert:
			m.Game.AddUnit(&game.Unit{
				ID:      m.Game.NextID("unit"),
				TypeID:  game.IndianConvert,
				OwnerID: winnerOwner,
				X:       winner.X,
				Y:       winner.Y,
				State:   game.StateActive,
			})
		case BurnMissions:
			for _, s := range m.Game.MissionsOf(loserOwner, winnerOwner) {
				s.MissionaryOwner = ""
			}
		case LootShip:
			loot(m.Game, winner, loser)
		case DamageShipAttack:
			m.damageShip(loser, m.Game.RepairLocation(loserOwner))
		case SinkShipAttack:
			m.Game.RemoveUnit(loser.ID)
		default:
			return fmt.Errorf("combat: unexpected result %s", r)
		}
	}
	return nil
}

// ApplyBombard changes the game after a settlement fired on a ship.
func (m *Model) ApplyBombard(ship *game.Unit, results Results) error {
	if ship == nil {
		return fmt.Errorf("combat: apply bombard needs a ship")
	}
	for _, r := range results {
		switch r {
		case Win, NoResult, EvadeBombard:
		case DamageShipBombard:
			m.damageShip(ship, m.Game.RepairLocation(ship.OwnerID))
		case SinkShipBombard:
			m.Game.RemoveUnit(ship.ID)
		default:
			return fmt.Errorf("combat: unexpected bombard result %s", r)
		}
	}
	return nil
}

func downgrade(u *game.Unit) game.RoleID {
	if d := u.Role().Downgrade; d != "" {
		return d
	}
	return game.RoleDefault
}

// slaughter removes the loser. Inside a colony the victim is a working
// colonist rather than the defender when one is left.
func (m *Model) slaughter(loser *game.Unit, s *game.Settlement) {
	if s != nil && s.IsColony() && s.OwnerID == loser.OwnerID && loser.State != game.StateWorking {
		for _, u := range m.Game.UnitsAt(s.Position()) {
			if u.State == game.StateWorking && u.OwnerID == s.OwnerID {
				m.Game.RemoveUnit(u.ID)
				return
			}
		}
	}
	m.Game.RemoveUnit(loser.ID)
}

func (m *Model) captureColony(winner *game.Unit, s *game.Settlement) {
	for _, u := range m.Game.UnitsAt(s.Position()) {
		if u.OwnerID == s.OwnerID && !u.IsNaval() {
			u.OwnerID = winner.OwnerID
		}
	}
	s.OwnerID = winner.OwnerID
	winner.SetPosition(s.Position())
}

func (m *Model) destroySettlement(s *game.Settlement) {
	for _, u := range m.Game.UnitsAt(s.Position()) {
		if u.OwnerID == s.OwnerID {
			m.Game.RemoveUnit(u.ID)
		}
	}
	m.Game.RemoveSettlement(s.ID)
}

func (m *Model) shipsAt(s *game.Settlement) []*game.Unit {
	out := []*game.Unit{}
	for _, u := range m.Game.UnitsAt(s.Position()) {
		if u.IsNaval() && u.OwnerID == s.OwnerID {
			out = append(out, u)
		}
	}
	return out
}

// damageShip loses the cargo and sends the ship to repair.
func (m *Model) damageShip(ship *game.Unit, repair *game.Settlement) {
	for _, cargo := range m.Game.UnitsAboard(ship.ID) {
		m.Game.RemoveUnit(cargo.ID)
	}
	ship.Goods = 0
	ship.Damaged = true
	ship.MovesLeft = 0
	if repair != nil {
		ship.SetPosition(repair.Position())
	}
}

func pillage(s *game.Settlement) {
	if s.Goods > 0 {
		s.Goods -= min(s.Goods, game.GoodsPerSlot)
		return
	}
	if s.Buildings > 0 {
		s.Buildings--
	}
}

func loot(g *game.Game, winner, loser *game.Unit) {
	free := g.SpaceLeft(winner) * game.GoodsPerSlot
	if partial := winner.Goods % game.GoodsPerSlot; partial > 0 {
		free += game.GoodsPerSlot - partial
	}
	taken := min(loser.Goods, free)
	winner.Goods += taken
	loser.Goods -= taken
}
