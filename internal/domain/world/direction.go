package world

type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var AllDirections = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// odd dx, odd dy, even dx, even dy
var directionOffsets = [8][4]int{
	{0, -2, 0, -2},
	{1, -1, 0, -1},
	{1, 0, 1, 0},
	{1, 1, 0, 1},
	{0, 2, 0, 2},
	{0, 1, -1, 1},
	{-1, 0, -1, 0},
	{0, -1, -1, -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) offset(row int) (int, int) {
	o := directionOffsets[d]
	if row%2 != 0 {
		return o[0], o[1]
	}
	return o[2], o[3]
}

func (d Direction) Reverse() Direction {
	return (d + 4) % 8
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "?"
	}
	return directionNames[d]
}

func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}
