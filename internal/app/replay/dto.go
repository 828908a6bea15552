package replay

import "newworld/internal/app/ports"

type Request struct {
	GameID string
	Limit  int
	// Unix seconds, zero means unbounded.
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Battles []ports.BattleReport
	// Outcomes counts reports by their leading result.
	Outcomes map[string]int
}
