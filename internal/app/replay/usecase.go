package replay

import (
	"context"
	"errors"
	"strings"

	"newworld/internal/app/ports"
	"newworld/internal/platform/rng"
)

var ErrInvalidRequest = errors.New("invalid replay request")

const DefaultLimit = 50

type UseCase struct {
	Battles ports.BattleRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	battles, err := u.Battles.ListByGameID(ctx, req.GameID, limit)
	if err != nil {
		return Response{}, err
	}
	battles = filterByTimeWindow(battles, req.OccurredFrom, req.OccurredTo)
	return Response{Battles: battles, Outcomes: countOutcomes(battles)}, nil
}

// Verify reports whether a stored draw is the one its seed produces.
func Verify(r ports.BattleReport) bool {
	return rng.Draw(r.Seed) == r.Draw
}

func filterByTimeWindow(battles []ports.BattleReport, from, to int64) []ports.BattleReport {
	if from <= 0 && to <= 0 {
		return battles
	}
	out := make([]ports.BattleReport, 0, len(battles))
	for _, b := range battles {
		ts := b.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, b)
	}
	return out
}

func countOutcomes(battles []ports.BattleReport) map[string]int {
	out := map[string]int{}
	for _, b := range battles {
		if len(b.Results) > 0 {
			out[b.Results[0]]++
		}
	}
	return out
}
