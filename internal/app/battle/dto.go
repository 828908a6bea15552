package battle

import (
	"newworld/internal/domain/combat"
	"newworld/internal/domain/world"
)

const (
	KindAttack  = "attack"
	KindBombard = "bombard"
)

type AttackRequest struct {
	GameID         string
	IdempotencyKey string
	AttackerID     string
	Target         world.Position
	// Seed fixes the draw. A fresh random seed is used when nil.
	Seed *int64
}

type BombardRequest struct {
	GameID         string
	IdempotencyKey string
	SettlementID   string
	Target         world.Position
	Seed           *int64
}

type Response struct {
	ReportID    string      `json:"report_id"`
	Kind        string      `json:"kind"`
	AttackerID  string      `json:"attacker_id"`
	DefenderID  string      `json:"defender_id"`
	Seed        int64       `json:"seed"`
	Draw        float64     `json:"draw"`
	Odds        combat.Odds `json:"odds"`
	Results     []string    `json:"results"`
	GameVersion int64       `json:"game_version"`
}

type OddsRequest struct {
	GameID     string
	AttackerID string
	Target     world.Position
}

type OddsResponse struct {
	DefenderID string      `json:"defender_id"`
	Odds       combat.Odds `json:"odds"`
}
