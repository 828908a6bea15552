// Package generator builds deterministic terrain for new games. Terrain is
// produced chunk by chunk from the seed alone, so chunks can be cached and
// shared by every map generated from the same seed.
package generator

import (
	"context"
	"errors"

	"newworld/internal/domain/world"
)

var ErrInvalidSize = errors.New("invalid map size")

type ChunkStore interface {
	GetChunk(ctx context.Context, seed int64, size int, coord world.ChunkCoord) (world.Chunk, bool, error)
	SaveChunk(ctx context.Context, seed int64, size int, chunk world.Chunk) error
}

type Config struct {
	ChunkSize  int
	ChunkStore ChunkStore
}

type Generator struct {
	cfg Config
}

func New(cfg Config) Generator {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = world.DefaultChunkSize
	}
	return Generator{cfg: cfg}
}

// Generate returns a width x height map. The outermost columns are high
// seas.
func (g Generator) Generate(ctx context.Context, width, height int, seed int64) (*world.Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	m := world.NewMap(width, height, world.TypeOcean)
	size := g.cfg.ChunkSize
	for cy := 0; cy <= floorDiv(height-1, size); cy++ {
		for cx := 0; cx <= floorDiv(width-1, size); cx++ {
			chunk, err := g.loadChunk(ctx, seed, world.ChunkCoord{X: cx, Y: cy})
			if err != nil {
				return nil, err
			}
			m.ApplyChunk(chunk)
		}
	}
	for y := 0; y < height; y++ {
		m.Tile(0, y).TypeID = world.TypeHighSeas
		m.Tile(width-1, y).TypeID = world.TypeHighSeas
		m.Tile(0, y).Resource = ""
		m.Tile(width-1, y).Resource = ""
	}
	return m, nil
}

func (g Generator) loadChunk(ctx context.Context, seed int64, coord world.ChunkCoord) (world.Chunk, error) {
	size := g.cfg.ChunkSize
	if g.cfg.ChunkStore != nil {
		if cached, ok, err := g.cfg.ChunkStore.GetChunk(ctx, seed, size, coord); err != nil {
			return world.Chunk{}, err
		} else if ok {
			return cached, nil
		}
	}
	chunk := generateChunk(seed, size, coord)
	if g.cfg.ChunkStore != nil {
		if err := g.cfg.ChunkStore.SaveChunk(ctx, seed, size, chunk); err != nil {
			return world.Chunk{}, err
		}
	}
	return chunk, nil
}

func generateChunk(seed int64, size int, coord world.ChunkCoord) world.Chunk {
	tiles := make([]world.Tile, 0, size*size)
	baseX := coord.X * size
	baseY := coord.Y * size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			tiles = append(tiles, genTile(seed, baseX+x, baseY+y))
		}
	}
	return world.Chunk{Coord: coord, Tiles: tiles}
}

func floorDiv(a, b int) int {
	if a >= 0 {
		return a / b
	}
	return -(((-a) + b - 1) / b)
}
