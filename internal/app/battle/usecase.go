package battle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"newworld/internal/app/ports"
	"newworld/internal/domain/combat"
	"newworld/internal/domain/game"
	"newworld/internal/platform/logging"
	"newworld/internal/platform/rng"
)

var (
	ErrInvalidRequest = errors.New("invalid battle request")
	ErrNoMovesLeft    = errors.New("unit has no moves left")
	ErrNotAdjacent    = errors.New("target is not adjacent")
	ErrNoDefender     = errors.New("no defender at target")
	ErrNotAtWar       = errors.New("players are not at war")
	ErrCannotBombard  = errors.New("settlement cannot bombard")
)

type UseCase struct {
	TxManager ports.TxManager
	Games     ports.GameRepository
	Battles   ports.BattleRepository
	Metrics   ports.BattleMetrics
	Logger    *zap.Logger
	Now       func() time.Time
	NewSeed   func() (int64, error)
}

// Attack resolves one attack of a unit on the strongest defender of an
// adjacent tile and stores the battle report. Repeating a request with the
// same idempotency key returns the stored report.
func (u UseCase) Attack(ctx context.Context, req AttackRequest) (Response, error) {
	req.AttackerID = strings.TrimSpace(req.AttackerID)
	if req.AttackerID == "" {
		return Response{}, ErrInvalidRequest
	}
	return u.resolve(ctx, req.GameID, req.IdempotencyKey, req.Seed, func(g *game.Game, seed int64) (ports.BattleReport, error) {
		attacker := g.Unit(req.AttackerID)
		if attacker == nil {
			return ports.BattleReport{}, fmt.Errorf("attacker %s: %w", req.AttackerID, ports.ErrNotFound)
		}
		if attacker.IsAboard() {
			return ports.BattleReport{}, ErrInvalidRequest
		}
		if attacker.MovesLeft <= 0 {
			return ports.BattleReport{}, ErrNoMovesLeft
		}
		if !g.Map.IsValid(req.Target) || attacker.Position().Distance(req.Target) != 1 {
			return ports.BattleReport{}, ErrNotAdjacent
		}
		model := combat.NewModel(g)
		defender := model.DefenderAt(attacker, req.Target)
		if defender == nil {
			return ports.BattleReport{}, ErrNoDefender
		}
		if !g.Owner(attacker).AtWarWith(defender.OwnerID) {
			return ports.BattleReport{}, ErrNotAtWar
		}

		draw := rng.Draw(seed)
		odds := model.CalculateCombatOdds(attacker, defender)
		results := model.GenerateAttackResult(attacker, defender, draw)
		if err := model.Apply(attacker, defender, results); err != nil {
			return ports.BattleReport{}, err
		}
		return ports.BattleReport{
			Kind:       KindAttack,
			AttackerID: attacker.ID,
			DefenderID: defender.ID,
			Draw:       draw,
			Odds:       odds,
			Results:    results.Strings(),
		}, nil
	})
}

// Bombard fires a colony's guns at an enemy ship next to it.
func (u UseCase) Bombard(ctx context.Context, req BombardRequest) (Response, error) {
	req.SettlementID = strings.TrimSpace(req.SettlementID)
	if req.SettlementID == "" {
		return Response{}, ErrInvalidRequest
	}
	return u.resolve(ctx, req.GameID, req.IdempotencyKey, req.Seed, func(g *game.Game, seed int64) (ports.BattleReport, error) {
		s := g.Settlements[req.SettlementID]
		if s == nil {
			return ports.BattleReport{}, fmt.Errorf("settlement %s: %w", req.SettlementID, ports.ErrNotFound)
		}
		if !s.CanBombard() {
			return ports.BattleReport{}, ErrCannotBombard
		}
		if !g.Map.IsValid(req.Target) || s.Position().Distance(req.Target) != 1 {
			return ports.BattleReport{}, ErrNotAdjacent
		}
		owner := g.Player(s.OwnerID)
		var ship *game.Unit
		for _, c := range g.UnitsAt(req.Target) {
			if c.IsNaval() && c.OwnerID != s.OwnerID {
				ship = c
				break
			}
		}
		if ship == nil {
			return ports.BattleReport{}, ErrNoDefender
		}
		if !owner.AtWarWith(ship.OwnerID) {
			return ports.BattleReport{}, ErrNotAtWar
		}

		model := combat.NewModel(g)
		draw := rng.Draw(seed)
		odds := model.BombardOdds(s, ship)
		results := model.GenerateBombardResult(s, ship, draw)
		if err := model.ApplyBombard(ship, results); err != nil {
			return ports.BattleReport{}, err
		}
		return ports.BattleReport{
			Kind:       KindBombard,
			AttackerID: s.ID,
			DefenderID: ship.ID,
			Draw:       draw,
			Odds:       odds,
			Results:    results.Strings(),
		}, nil
	})
}

type fightFunc func(g *game.Game, seed int64) (ports.BattleReport, error)

func (u UseCase) resolve(ctx context.Context, gameID, key string, seed *int64, fight fightFunc) (Response, error) {
	gameID = strings.TrimSpace(gameID)
	key = strings.TrimSpace(key)
	if gameID == "" || key == "" {
		return Response{}, ErrInvalidRequest
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	logger := logging.OrNop(u.Logger)

	var (
		out      Response
		replayed bool
	)
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		prev, err := u.Battles.GetByIdempotencyKey(txCtx, gameID, key)
		if err == nil && prev != nil {
			out = toResponse(*prev)
			replayed = true
			return nil
		}
		if err != nil && !errors.Is(err, ports.ErrNotFound) {
			return err
		}

		g, err := u.Games.GetByID(txCtx, gameID)
		if err != nil {
			return err
		}
		s, err := u.seed(seed)
		if err != nil {
			return err
		}
		report, err := fight(g, s)
		if err != nil {
			return err
		}

		expected := g.Version
		g.Version++
		g.UpdatedAt = nowFn()
		if err := u.Games.SaveWithVersion(txCtx, g, expected); err != nil {
			return err
		}

		report.ID = uuid.NewString()
		report.GameID = gameID
		report.IdempotencyKey = key
		report.Seed = s
		report.GameVersion = g.Version
		report.OccurredAt = g.UpdatedAt
		if err := u.Battles.Save(txCtx, report); err != nil {
			return err
		}
		out = toResponse(report)
		return nil
	})
	if err != nil {
		if u.Metrics != nil {
			if errors.Is(err, ports.ErrConflict) {
				u.Metrics.RecordConflict()
			} else {
				u.Metrics.RecordFailure()
			}
		}
		logger.Warn("battle rejected", zap.String("game_id", gameID), zap.String("idempotency_key", key), zap.Error(err))
		return Response{}, err
	}
	if replayed {
		return out, nil
	}
	if u.Metrics != nil {
		u.Metrics.RecordBattle(out.Results[0])
	}
	logger.Info("battle resolved",
		zap.String("game_id", gameID),
		zap.String("kind", out.Kind),
		zap.String("attacker_id", out.AttackerID),
		zap.String("defender_id", out.DefenderID),
		zap.Int64("seed", out.Seed),
		zap.Float64("win", out.Odds.Win),
		zap.Strings("results", out.Results),
	)
	return out, nil
}

func (u UseCase) seed(fixed *int64) (int64, error) {
	if fixed != nil {
		return *fixed, nil
	}
	if u.NewSeed != nil {
		return u.NewSeed()
	}
	return rng.NewSeed()
}

func toResponse(r ports.BattleReport) Response {
	return Response{
		ReportID:    r.ID,
		Kind:        r.Kind,
		AttackerID:  r.AttackerID,
		DefenderID:  r.DefenderID,
		Seed:        r.Seed,
		Draw:        r.Draw,
		Odds:        r.Odds,
		Results:     r.Results,
		GameVersion: r.GameVersion,
	}
}
