package world

const DefaultChunkSize = 8

type ChunkCoord struct {
	X int
	Y int
}

type Chunk struct {
	Coord ChunkCoord
	Tiles []Tile
}

func (m *Map) Chunks(size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	out := []Chunk{}
	for cy := 0; cy*size < m.Height; cy++ {
		for cx := 0; cx*size < m.Width; cx++ {
			chunk := Chunk{Coord: ChunkCoord{X: cx, Y: cy}}
			for y := cy * size; y < min((cy+1)*size, m.Height); y++ {
				for x := cx * size; x < min((cx+1)*size, m.Width); x++ {
					chunk.Tiles = append(chunk.Tiles, *m.Tile(x, y))
				}
			}
			out = append(out, chunk)
		}
	}
	return out
}

// ApplyChunk writes chunk tiles back into the map, skipping tiles that
// fall outside it.
func (m *Map) ApplyChunk(c Chunk) {
	for _, t := range c.Tiles {
		if dst := m.Tile(t.X, t.Y); dst != nil {
			*dst = t
		}
	}
}
