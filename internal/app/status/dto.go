package status

import "time"

type Request struct {
	GameID string
}

type PlayerSummary struct {
	ID          string `json:"id"`
	Nation      string `json:"nation"`
	Kind        string `json:"kind"`
	Units       int    `json:"units"`
	Settlements int    `json:"settlements"`
	// AtWarWith lists players this one is at war with, sorted.
	AtWarWith []string `json:"at_war_with,omitempty"`
}

type Response struct {
	GameID    string          `json:"game_id"`
	Turn      int             `json:"turn"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Version   int64           `json:"version"`
	UpdatedAt time.Time       `json:"updated_at"`
	Players   []PlayerSummary `json:"players"`
}
