package world

import (
	"errors"
	"fmt"
)

var ErrInvalidMap = errors.New("invalid map")

type Map struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Tiles  []Tile `json:"tiles"`
}

func NewMap(width, height int, fill string) *Map {
	m := &Map{Width: width, Height: height, Tiles: make([]Tile, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Tiles[y*width+x] = Tile{X: x, Y: y, TypeID: fill}
		}
	}
	return m
}

func (m *Map) Validate() error {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return ErrInvalidMap
	}
	if len(m.Tiles) != m.Width*m.Height {
		return fmt.Errorf("%w: expected %d tiles, got %d", ErrInvalidMap, m.Width*m.Height, len(m.Tiles))
	}
	for i := range m.Tiles {
		t := &m.Tiles[i]
		if t.X != i%m.Width || t.Y != i/m.Width {
			return fmt.Errorf("%w: tile %d at (%d,%d) out of place", ErrInvalidMap, i, t.X, t.Y)
		}
		if _, ok := LookupTileType(t.TypeID); !ok {
			return fmt.Errorf("%w: unknown tile type %q at (%d,%d)", ErrInvalidMap, t.TypeID, t.X, t.Y)
		}
	}
	return nil
}

func (m *Map) IsValid(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

func (m *Map) Tile(x, y int) *Tile {
	if !m.IsValid(Position{X: x, Y: y}) {
		return nil
	}
	return &m.Tiles[y*m.Width+x]
}

func (m *Map) TileAt(p Position) *Tile {
	return m.Tile(p.X, p.Y)
}

func (m *Map) Neighbour(t *Tile, d Direction) *Tile {
	return m.TileAt(t.Position().Step(d))
}

func (m *Map) Neighbours(t *Tile) []*Tile {
	out := make([]*Tile, 0, len(AllDirections))
	for _, d := range AllDirections {
		if n := m.Neighbour(t, d); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// IsCoastal reports whether a land tile touches water.
func (m *Map) IsCoastal(t *Tile) bool {
	if !t.IsLand() {
		return false
	}
	for _, n := range m.Neighbours(t) {
		if !n.IsLand() {
			return true
		}
	}
	return false
}

func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := &Map{Width: m.Width, Height: m.Height, Tiles: make([]Tile, len(m.Tiles))}
	copy(out.Tiles, m.Tiles)
	for i := range out.Tiles {
		if src := m.Tiles[i].ExploredBy; src != nil {
			dst := make(map[string]bool, len(src))
			for k, v := range src {
				dst[k] = v
			}
			out.Tiles[i].ExploredBy = dst
		}
	}
	return out
}
