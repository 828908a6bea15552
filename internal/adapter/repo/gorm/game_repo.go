package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"newworld/internal/adapter/repo/gorm/model"
	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gameState is everything of a game except its map, stored as jsonb.
type gameState struct {
	Players     map[string]*game.Player     `json:"players"`
	Units       map[string]*game.Unit       `json:"units"`
	Settlements map[string]*game.Settlement `json:"settlements"`
	Sequence    int                         `json:"sequence"`
}

// GameRepo stores the map of a game as fixed-size chunks next to the
// game row.
type GameRepo struct {
	db        *gorm.DB
	chunkSize int
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return GameRepo{db: db, chunkSize: world.DefaultChunkSize}
}

func (r GameRepo) GetByID(ctx context.Context, gameID string) (*game.Game, error) {
	db := conn(ctx, r.db)
	var row model.Game
	if err := db.Where("game_id = ?", gameID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	var state gameState
	if err := json.Unmarshal(row.State, &state); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", gameID, err)
	}

	chunks := []model.GameChunk{}
	if err := db.Where(&model.GameChunk{GameID: gameID}).Find(&chunks).Error; err != nil {
		return nil, err
	}
	m := world.NewMap(int(row.Width), int(row.Height), world.TypeOcean)
	for _, c := range chunks {
		tiles, err := decodeChunkTiles(c.Tiles)
		if err != nil {
			return nil, fmt.Errorf("decode chunk %d,%d of game %s: %w", c.ChunkX, c.ChunkY, gameID, err)
		}
		m.ApplyChunk(world.Chunk{Coord: world.ChunkCoord{X: int(c.ChunkX), Y: int(c.ChunkY)}, Tiles: tiles})
	}

	g := game.New(row.GameID, m)
	g.Turn = int(row.Turn)
	g.Version = row.Version
	g.UpdatedAt = row.UpdatedAt
	g.Sequence = state.Sequence
	if state.Players != nil {
		g.Players = state.Players
	}
	if state.Units != nil {
		g.Units = state.Units
	}
	if state.Settlements != nil {
		g.Settlements = state.Settlements
	}
	return g, nil
}

func (r GameRepo) SaveWithVersion(ctx context.Context, g *game.Game, expectedVersion int64) error {
	state, err := json.Marshal(gameState{
		Players:     g.Players,
		Units:       g.Units,
		Settlements: g.Settlements,
		Sequence:    g.Sequence,
	})
	if err != nil {
		return fmt.Errorf("encode game %s: %w", g.ID, err)
	}
	updatedAt := g.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if expectedVersion == 0 {
			row := model.Game{
				GameID:    g.ID,
				Turn:      int32(g.Turn),
				Width:     int32(g.Map.Width),
				Height:    int32(g.Map.Height),
				ChunkSize: int32(r.chunkSize),
				State:     state,
				Version:   g.Version,
				UpdatedAt: updatedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ports.ErrConflict
				}
				return err
			}
		} else {
			res := tx.Model(&model.Game{}).
				Where("game_id = ? AND version = ?", g.ID, expectedVersion).
				Updates(map[string]any{
					"turn":       int32(g.Turn),
					"state":      state,
					"version":    g.Version,
					"updated_at": updatedAt,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ports.ErrConflict
			}
		}
		return r.saveChunks(tx, g, updatedAt)
	})
}

func (r GameRepo) saveChunks(tx *gorm.DB, g *game.Game, at time.Time) error {
	chunks := g.Map.Chunks(r.chunkSize)
	rows := make([]model.GameChunk, 0, len(chunks))
	for _, c := range chunks {
		b, err := encodeChunkTiles(c.Tiles)
		if err != nil {
			return err
		}
		rows = append(rows, model.GameChunk{
			GameID:    g.ID,
			ChunkX:    int32(c.Coord.X),
			ChunkY:    int32(c.Coord.Y),
			Tiles:     b,
			UpdatedAt: at,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "game_id"}, {Name: "chunk_x"}, {Name: "chunk_y"}},
		DoUpdates: clause.AssignmentColumns([]string{"tiles", "updated_at"}),
	}).Create(&rows).Error
}
