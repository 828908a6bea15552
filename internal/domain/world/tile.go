package world

type RiverLevel int

const (
	RiverNone RiverLevel = iota
	RiverMinor
	RiverMajor
)

type Tile struct {
	X            int             `json:"x"`
	Y            int             `json:"y"`
	TypeID       string          `json:"type"`
	River        RiverLevel      `json:"river,omitempty"`
	Road         bool            `json:"road,omitempty"`
	Resource     string          `json:"resource,omitempty"`
	SettlementID string          `json:"settlement_id,omitempty"`
	ExploredBy   map[string]bool `json:"explored_by,omitempty"`
}

func (t *Tile) Position() Position {
	return Position{X: t.X, Y: t.Y}
}

func (t *Tile) Type() TileType {
	return TileTypeByID(t.TypeID)
}

func (t *Tile) IsLand() bool {
	return !t.Type().Water
}

func (t *Tile) HasSettlement() bool {
	return t.SettlementID != ""
}

func (t *Tile) Explore(playerID string) {
	if t.ExploredBy == nil {
		t.ExploredBy = map[string]bool{}
	}
	t.ExploredBy[playerID] = true
}

func (t *Tile) IsExploredBy(playerID string) bool {
	return t.ExploredBy[playerID]
}

func (t *Tile) DefenceBonus() int {
	return t.Type().DefenceBonus
}

// MoveCost is the cost in thirds of a move to step from t onto to.
// A road or river on both ends reduces the step to a single third;
// a settlement counts as a road.
func (t *Tile) MoveCost(to *Tile) int {
	if t.IsLand() && to.IsLand() {
		if t.hasRoad() && to.hasRoad() {
			return MinimumMoveCost
		}
		if t.River > RiverNone && to.River > RiverNone {
			return MinimumMoveCost
		}
	}
	return to.Type().BasicMoveCost
}

func (t *Tile) hasRoad() bool {
	return t.Road || t.SettlementID != ""
}
