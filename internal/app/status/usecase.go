package status

import (
	"context"
	"errors"
	"sort"
	"strings"

	"newworld/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid status request")

type UseCase struct {
	Games ports.GameRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.GameID) == "" {
		return Response{}, ErrInvalidRequest
	}
	g, err := u.Games.GetByID(ctx, req.GameID)
	if err != nil {
		return Response{}, err
	}

	units := map[string]int{}
	for _, unit := range g.Units {
		units[unit.OwnerID]++
	}
	settlements := map[string]int{}
	for _, s := range g.Settlements {
		settlements[s.OwnerID]++
	}

	players := make([]PlayerSummary, 0, len(g.Players))
	for _, p := range g.Players {
		var enemies []string
		for other := range g.Players {
			if other != p.ID && p.AtWarWith(other) {
				enemies = append(enemies, other)
			}
		}
		sort.Strings(enemies)
		players = append(players, PlayerSummary{
			ID:          p.ID,
			Nation:      p.Nation,
			Kind:        string(p.Kind),
			Units:       units[p.ID],
			Settlements: settlements[p.ID],
			AtWarWith:   enemies,
		})
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })

	return Response{
		GameID:    g.ID,
		Turn:      g.Turn,
		Width:     g.Map.Width,
		Height:    g.Map.Height,
		Version:   g.Version,
		UpdatedAt: g.UpdatedAt,
		Players:   players,
	}, nil
}
