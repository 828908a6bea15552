package game

import "newworld/internal/domain/world"

type SettlementKind string

const (
	KindColony SettlementKind = "colony"
	KindNative SettlementKind = "native"
)

type Stockade string

const (
	StockadeNone     Stockade = ""
	StockadeStockade Stockade = "stockade"
	StockadeFort     Stockade = "fort"
	StockadeFortress Stockade = "fortress"
)

// Defence percentages and bombard strength by stockade level.
var stockadeDefence = map[Stockade]int{
	StockadeNone:     0,
	StockadeStockade: 100,
	StockadeFort:     150,
	StockadeFortress: 200,
}

var stockadeBombard = map[Stockade]float64{
	StockadeFort:     4,
	StockadeFortress: 6,
}

const (
	// NativeSettlementDefence applies to every native settlement.
	NativeSettlementDefence = 50
	NativeCapitalDefence    = 100
	// Stored goods needed to auto equip one defender.
	AutoEquipMuskets = 50
)

type Settlement struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Kind    SettlementKind `json:"kind"`
	OwnerID string         `json:"owner"`
	X       int            `json:"x"`
	Y       int            `json:"y"`
	// Colony fields.
	Stockade      Stockade `json:"stockade,omitempty"`
	SonsOfLiberty int      `json:"sons_of_liberty,omitempty"`
	Muskets       int      `json:"muskets,omitempty"`
	Horses        int      `json:"horses,omitempty"`
	Goods         int      `json:"goods,omitempty"`
	Buildings     int      `json:"buildings,omitempty"`
	// Native fields.
	Capital         bool   `json:"capital,omitempty"`
	MissionaryOwner string `json:"missionary_owner,omitempty"`
}

func (s *Settlement) Position() world.Position {
	return world.Position{X: s.X, Y: s.Y}
}

func (s *Settlement) IsColony() bool {
	return s.Kind == KindColony
}

func (s *Settlement) IsNative() bool {
	return s.Kind == KindNative
}

func (s *Settlement) DefenceBonus() int {
	if s.IsNative() {
		if s.Capital {
			return NativeCapitalDefence
		}
		return NativeSettlementDefence
	}
	return stockadeDefence[s.Stockade]
}

func (s *Settlement) HasStockade() bool {
	return s.IsColony() && s.Stockade != StockadeNone
}

func (s *Settlement) CanBombard() bool {
	return s.IsColony() && stockadeBombard[s.Stockade] > 0
}

func (s *Settlement) BombardStrength() float64 {
	return stockadeBombard[s.Stockade]
}

func (s *Settlement) CanAutoEquip() bool {
	return s.Muskets >= AutoEquipMuskets
}

func (s *Settlement) CanBePillaged() bool {
	return s.IsColony() && (s.Goods > 0 || s.Buildings > 0)
}
