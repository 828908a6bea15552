package battle

import (
	"context"
	"fmt"
	"strings"

	"newworld/internal/app/ports"
	"newworld/internal/domain/combat"
)

// OddsUseCase previews an attack without resolving it.
type OddsUseCase struct {
	Games ports.GameRepository
}

func (u OddsUseCase) Execute(ctx context.Context, req OddsRequest) (OddsResponse, error) {
	gameID := strings.TrimSpace(req.GameID)
	attackerID := strings.TrimSpace(req.AttackerID)
	if gameID == "" || attackerID == "" {
		return OddsResponse{}, ErrInvalidRequest
	}
	g, err := u.Games.GetByID(ctx, gameID)
	if err != nil {
		return OddsResponse{}, err
	}
	attacker := g.Unit(attackerID)
	if attacker == nil {
		return OddsResponse{}, fmt.Errorf("attacker %s: %w", attackerID, ports.ErrNotFound)
	}
	if !g.Map.IsValid(req.Target) || attacker.Position().Distance(req.Target) != 1 {
		return OddsResponse{}, ErrNotAdjacent
	}
	model := combat.NewModel(g)
	defender := model.DefenderAt(attacker, req.Target)
	if defender == nil {
		return OddsResponse{}, ErrNoDefender
	}
	return OddsResponse{DefenderID: defender.ID, Odds: model.CalculateCombatOdds(attacker, defender)}, nil
}
