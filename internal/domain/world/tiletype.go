package world

// Move costs are in thirds of a movement point.
const (
	MoveUnit        = 3
	MinimumMoveCost = 1
)

type TileType struct {
	ID             string `json:"id"`
	BasicMoveCost  int    `json:"basic_move_cost"`
	DefenceBonus   int    `json:"defence_bonus"`
	Water          bool   `json:"water"`
	HighSeas       bool   `json:"high_seas"`
	CanSettle      bool   `json:"can_settle"`
	ForestCovered  bool   `json:"forest_covered"`
	ElevatedGround bool   `json:"elevated_ground"`
}

const (
	TypeOcean      = "ocean"
	TypeHighSeas   = "high_seas"
	TypeLake       = "lake"
	TypePlains     = "plains"
	TypeGrassland  = "grassland"
	TypePrairie    = "prairie"
	TypeSavannah   = "savannah"
	TypeMarsh      = "marsh"
	TypeSwamp      = "swamp"
	TypeDesert     = "desert"
	TypeTundra     = "tundra"
	TypeArctic     = "arctic"
	TypeForest     = "mixed_forest"
	TypeConifer    = "conifer_forest"
	TypeRainForest = "tropical_forest"
	TypeHills      = "hills"
	TypeMountains  = "mountains"
)

var tileTypes = map[string]TileType{
	TypeOcean:      {ID: TypeOcean, BasicMoveCost: 3, Water: true},
	TypeHighSeas:   {ID: TypeHighSeas, BasicMoveCost: 3, Water: true, HighSeas: true},
	TypeLake:       {ID: TypeLake, BasicMoveCost: 3, Water: true},
	TypePlains:     {ID: TypePlains, BasicMoveCost: 3, CanSettle: true},
	TypeGrassland:  {ID: TypeGrassland, BasicMoveCost: 3, CanSettle: true},
	TypePrairie:    {ID: TypePrairie, BasicMoveCost: 3, CanSettle: true},
	TypeSavannah:   {ID: TypeSavannah, BasicMoveCost: 3, CanSettle: true},
	TypeMarsh:      {ID: TypeMarsh, BasicMoveCost: 6, DefenceBonus: 25, CanSettle: true},
	TypeSwamp:      {ID: TypeSwamp, BasicMoveCost: 6, DefenceBonus: 25, CanSettle: true},
	TypeDesert:     {ID: TypeDesert, BasicMoveCost: 3, CanSettle: true},
	TypeTundra:     {ID: TypeTundra, BasicMoveCost: 3, CanSettle: true},
	TypeArctic:     {ID: TypeArctic, BasicMoveCost: 6},
	TypeForest:     {ID: TypeForest, BasicMoveCost: 6, DefenceBonus: 50, CanSettle: true, ForestCovered: true},
	TypeConifer:    {ID: TypeConifer, BasicMoveCost: 6, DefenceBonus: 50, CanSettle: true, ForestCovered: true},
	TypeRainForest: {ID: TypeRainForest, BasicMoveCost: 9, DefenceBonus: 75, CanSettle: true, ForestCovered: true},
	TypeHills:      {ID: TypeHills, BasicMoveCost: 9, DefenceBonus: 100, CanSettle: true, ElevatedGround: true},
	TypeMountains:  {ID: TypeMountains, BasicMoveCost: 9, DefenceBonus: 150, ElevatedGround: true},
}

func LookupTileType(id string) (TileType, bool) {
	t, ok := tileTypes[id]
	return t, ok
}

// TileTypeByID panics on unknown ids; map data is validated on load.
func TileTypeByID(id string) TileType {
	t, ok := tileTypes[id]
	if !ok {
		panic("world: unknown tile type " + id)
	}
	return t
}

func TileTypeIDs() []string {
	out := make([]string, 0, len(tileTypes))
	for id := range tileTypes {
		out = append(out, id)
	}
	return out
}
