package generator

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"newworld/internal/adapter/repo/gorm/model"
	"newworld/internal/domain/world"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormChunkStore struct {
	db *gorm.DB
}

func NewGormChunkStore(db *gorm.DB) GormChunkStore {
	return GormChunkStore{db: db}
}

func (s GormChunkStore) GetChunk(ctx context.Context, seed int64, size int, coord world.ChunkCoord) (world.Chunk, bool, error) {
	var row model.GeneratedChunk
	err := s.db.WithContext(ctx).
		Where(map[string]any{
			"seed":       seed,
			"chunk_size": int32(size),
			"chunk_x":    int32(coord.X),
			"chunk_y":    int32(coord.Y),
		}).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return world.Chunk{}, false, nil
		}
		return world.Chunk{}, false, err
	}
	tiles := []world.Tile{}
	if err := json.Unmarshal(row.Tiles, &tiles); err != nil {
		return world.Chunk{}, false, err
	}
	return world.Chunk{Coord: coord, Tiles: tiles}, true, nil
}

func (s GormChunkStore) SaveChunk(ctx context.Context, seed int64, size int, chunk world.Chunk) error {
	b, err := json.Marshal(chunk.Tiles)
	if err != nil {
		return err
	}
	row := model.GeneratedChunk{
		Seed:      seed,
		ChunkSize: int32(size),
		ChunkX:    int32(chunk.Coord.X),
		ChunkY:    int32(chunk.Coord.Y),
		Tiles:     b,
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "seed"}, {Name: "chunk_size"}, {Name: "chunk_x"}, {Name: "chunk_y"}},
		DoUpdates: clause.AssignmentColumns([]string{"tiles", "updated_at"}),
	}).Create(&row).Error
}
