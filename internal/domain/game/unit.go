package game

import "newworld/internal/domain/world"

type UnitState string

const (
	StateActive    UnitState = "active"
	StateFortified UnitState = "fortified"
	StateSentry    UnitState = "sentry"
	// StateWorking units are inside a colony working a building or tile.
	StateWorking UnitState = "working"
)

// GoodsPerSlot is how many goods fill one cargo slot.
const GoodsPerSlot = 100

type Unit struct {
	ID        string     `json:"id"`
	TypeID    UnitTypeID `json:"type"`
	RoleID    RoleID     `json:"role,omitempty"`
	OwnerID   string     `json:"owner"`
	X         int        `json:"x"`
	Y         int        `json:"y"`
	MovesLeft int        `json:"moves_left"`
	State     UnitState  `json:"state,omitempty"`
	CarrierID string     `json:"carrier_id,omitempty"`
	Goods     int        `json:"goods,omitempty"`
	Damaged   bool       `json:"damaged,omitempty"`
}

func (u *Unit) Type() UnitType {
	return UnitTypeByID(u.TypeID)
}

func (u *Unit) Role() Role {
	return RoleByID(u.RoleID)
}

func (u *Unit) Position() world.Position {
	return world.Position{X: u.X, Y: u.Y}
}

func (u *Unit) SetPosition(p world.Position) {
	u.X, u.Y = p.X, p.Y
}

func (u *Unit) IsNaval() bool {
	return u.Type().IsNaval()
}

// InitialMoves is the movement allowance at the start of a turn, in thirds.
func (u *Unit) InitialMoves() int {
	return u.Type().Moves + u.Role().Moves
}

func (u *Unit) IsArmed() bool {
	return u.Role().HasEquipment(EquipMuskets)
}

func (u *Unit) IsMounted() bool {
	return u.Role().HasEquipment(EquipHorses)
}

func (u *Unit) IsOffensive() bool {
	return u.Type().Offence > DefaultOffence || u.IsArmed() || u.IsMounted()
}

func (u *Unit) IsDefensive() bool {
	return !u.IsNaval() && (u.Type().Defence > DefaultDefence || u.IsArmed() || u.IsMounted())
}

func (u *Unit) IsAboard() bool {
	return u.CarrierID != ""
}

func (u *Unit) Has(a Ability) bool {
	return u.Type().Has(a)
}

func (u *Unit) CanCarry(cargo *Unit) bool {
	return u.IsNaval() && !cargo.IsNaval() && u.Type().Space >= cargo.Type().SpaceTaken
}

func (u *Unit) GoodsSlots() int {
	return (u.Goods + GoodsPerSlot - 1) / GoodsPerSlot
}
