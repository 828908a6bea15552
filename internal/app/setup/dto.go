package setup

type PlayerSpec struct {
	ID        string   `json:"id"`
	Nation    string   `json:"nation"`
	Kind      string   `json:"kind"`
	AtWarWith []string `json:"at_war_with,omitempty"`
}

type Request struct {
	// Scenario loads a prepared game. Width, Height, Seed and Players are
	// ignored when it is set.
	Scenario string
	Width    int
	Height   int
	Seed     *int64
	Players  []PlayerSpec
}

type Response struct {
	GameID      string `json:"game_id"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Seed        int64  `json:"seed,omitempty"`
	Players     int    `json:"players"`
	Units       int    `json:"units"`
	Settlements int    `json:"settlements"`
	Version     int64  `json:"version"`
}
