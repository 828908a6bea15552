package yamlfile

type document struct {
	Name        string           `yaml:"name"`
	Turn        int              `yaml:"turn"`
	Map         mapSpec          `yaml:"map"`
	Players     []playerSpec     `yaml:"players"`
	Units       []unitSpec       `yaml:"units"`
	Settlements []settlementSpec `yaml:"settlements"`
}

type mapSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Fill   string `yaml:"fill"`
	// Rows draws the map one character per tile, see terrainCodes.
	Rows  []string   `yaml:"rows"`
	Tiles []tileSpec `yaml:"tiles"`
}

type tileSpec struct {
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Type     string `yaml:"type"`
	River    int    `yaml:"river"`
	Road     bool   `yaml:"road"`
	Resource string `yaml:"resource"`
}

type playerSpec struct {
	ID                    string            `yaml:"id"`
	Nation                string            `yaml:"nation"`
	Kind                  string            `yaml:"kind"`
	OffenceAgainstNatives int               `yaml:"offence_against_natives"`
	NavalOffenceBonus     int               `yaml:"naval_offence_bonus"`
	AutomaticEquipment    bool              `yaml:"automatic_equipment"`
	Stances               map[string]string `yaml:"stances"`
	Explored              bool              `yaml:"explored"`
}

type unitSpec struct {
	ID        string `yaml:"id"`
	Type      string `yaml:"type"`
	Role      string `yaml:"role"`
	Owner     string `yaml:"owner"`
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	MovesLeft *int   `yaml:"moves_left"`
	State     string `yaml:"state"`
	Carrier   string `yaml:"carrier"`
	Goods     int    `yaml:"goods"`
	Damaged   bool   `yaml:"damaged"`
}

type settlementSpec struct {
	ID              string `yaml:"id"`
	Name            string `yaml:"name"`
	Kind            string `yaml:"kind"`
	Owner           string `yaml:"owner"`
	X               int    `yaml:"x"`
	Y               int    `yaml:"y"`
	Stockade        string `yaml:"stockade"`
	SonsOfLiberty   int    `yaml:"sons_of_liberty"`
	Muskets         int    `yaml:"muskets"`
	Horses          int    `yaml:"horses"`
	Goods           int    `yaml:"goods"`
	Buildings       int    `yaml:"buildings"`
	Capital         bool   `yaml:"capital"`
	MissionaryOwner string `yaml:"missionary_owner"`
}
