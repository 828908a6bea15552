package world

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Step(d Direction) Position {
	dx, dy := d.offset(p.Y)
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Distance is the number of single steps between two positions. Rows are
// offset by half a tile, so the formula corrects the integer half-row
// term depending on row parity. Go and the tile renderer both truncate
// toward zero here, keep it that way.
func (p Position) Distance(o Position) int {
	return Distance(p.X, p.Y, o.X, o.Y)
}

func Distance(ax, ay, bx, by int) int {
	r := (bx - ax) - (ay-by)/2
	if by > ay && ay%2 == 0 && by%2 != 0 {
		r++
	} else if by < ay && ay%2 != 0 && by%2 == 0 {
		r--
	}
	return max(abs(ay-by+r), abs(r))
}

func (p Position) DirectionTo(o Position) (Direction, bool) {
	for _, d := range AllDirections {
		if p.Step(d) == o {
			return d, true
		}
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
