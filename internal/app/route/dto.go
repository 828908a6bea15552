package route

import "newworld/internal/domain/world"

type Goal string

const (
	GoalSettlement Goal = "settlement"
	GoalCoast      Goal = "coast"
	GoalResource   Goal = "resource"
)

type PathRequest struct {
	GameID    string
	UnitID    string
	Target    world.Position
	CarrierID string
}

type SearchRequest struct {
	GameID    string
	UnitID    string
	Goal      Goal
	MaxTurns  int
	CarrierID string
}

type Step struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Cost      int  `json:"cost"`
	Turns     int  `json:"turns"`
	MovesLeft int  `json:"moves_left"`
	OnCarrier bool `json:"on_carrier"`
}

type Response struct {
	Found bool   `json:"found"`
	Steps []Step `json:"steps"`
	Cost  int    `json:"cost"`
	Turns int    `json:"turns"`
}
