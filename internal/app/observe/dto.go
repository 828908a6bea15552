package observe

import "newworld/internal/domain/world"

type Request struct {
	GameID string
	UnitID string
}

type ObservedTile struct {
	Pos        world.Position `json:"pos"`
	Type       string         `json:"type"`
	Explored   bool           `json:"explored"`
	Resource   string         `json:"resource,omitempty"`
	Road       bool           `json:"road,omitempty"`
	River      int            `json:"river,omitempty"`
	MoveCost   int            `json:"move_cost,omitempty"`
	Defence    int            `json:"defence_bonus,omitempty"`
	Settlement string         `json:"settlement_id,omitempty"`
}

type ObservedUnit struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Role    string         `json:"role,omitempty"`
	Owner   string         `json:"owner"`
	Pos     world.Position `json:"pos"`
	Hostile bool           `json:"hostile"`
}

type ObservedSettlement struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Kind    string         `json:"kind"`
	Owner   string         `json:"owner"`
	Pos     world.Position `json:"pos"`
	Hostile bool           `json:"hostile"`
}

type View struct {
	Center world.Position `json:"center"`
	Radius int            `json:"radius"`
}

type Response struct {
	UnitID      string               `json:"unit_id"`
	MovesLeft   int                  `json:"moves_left"`
	View        View                 `json:"view"`
	Tiles       []ObservedTile       `json:"tiles"`
	Units       []ObservedUnit       `json:"units"`
	Settlements []ObservedSettlement `json:"settlements"`
}
