package gormrepo

import (
	"context"
	"encoding/json"
	"errors"

	"newworld/internal/adapter/repo/gorm/model"
	"newworld/internal/app/ports"
	"newworld/internal/domain/combat"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BattleRepo struct {
	db *gorm.DB
}

func NewBattleRepo(db *gorm.DB) BattleRepo {
	return BattleRepo{db: db}
}

func (r BattleRepo) GetByIdempotencyKey(ctx context.Context, gameID, key string) (*ports.BattleReport, error) {
	var row model.BattleReport
	err := conn(ctx, r.db).
		Where(&model.BattleReport{GameID: gameID, IdempotencyKey: key}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	out, err := toBattleReport(row)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r BattleRepo) Save(ctx context.Context, report ports.BattleReport) error {
	results, err := json.Marshal(report.Results)
	if err != nil {
		return err
	}
	row := model.BattleReport{
		ReportID:       report.ID,
		GameID:         report.GameID,
		IdempotencyKey: report.IdempotencyKey,
		Kind:           report.Kind,
		AttackerID:     report.AttackerID,
		DefenderID:     report.DefenderID,
		Seed:           report.Seed,
		Draw:           report.Draw,
		Offence:        report.Odds.Offence,
		Defence:        report.Odds.Defence,
		WinProbability: report.Odds.Win,
		Results:        results,
		GameVersion:    report.GameVersion,
		OccurredAt:     report.OccurredAt,
	}
	if err := conn(ctx, r.db).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConflict
		}
		return err
	}
	return nil
}

func (r BattleRepo) ListByGameID(ctx context.Context, gameID string, limit int) ([]ports.BattleReport, error) {
	rows := []model.BattleReport{}
	query := conn(ctx, r.db).
		Where(&model.BattleReport{GameID: gameID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.BattleReport, 0, len(rows))
	for _, row := range rows {
		b, err := toBattleReport(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func toBattleReport(row model.BattleReport) (ports.BattleReport, error) {
	results := []string{}
	if len(row.Results) > 0 {
		if err := json.Unmarshal(row.Results, &results); err != nil {
			return ports.BattleReport{}, err
		}
	}
	return ports.BattleReport{
		ID:             row.ReportID,
		GameID:         row.GameID,
		IdempotencyKey: row.IdempotencyKey,
		Kind:           row.Kind,
		AttackerID:     row.AttackerID,
		DefenderID:     row.DefenderID,
		Seed:           row.Seed,
		Draw:           row.Draw,
		Odds:           combat.Odds{Offence: row.Offence, Defence: row.Defence, Win: row.WinProbability},
		Results:        results,
		GameVersion:    row.GameVersion,
		OccurredAt:     row.OccurredAt,
	}, nil
}
