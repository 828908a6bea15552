package pathfind

import "container/heap"

// openSet orders nodes by cost plus heuristic. Ties go to the tile that
// comes first in row-major order (y, then x), matching how the map stores
// tiles, and then to fewer turns.
type openSet []*PathNode

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.priority() != b.priority() {
		return a.priority() < b.priority()
	}
	if a.Tile.Y != b.Tile.Y {
		return a.Tile.Y < b.Tile.Y
	}
	if a.Tile.X != b.Tile.X {
		return a.Tile.X < b.Tile.X
	}
	return a.Turns < b.Turns
}

func (q openSet) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openSet) Push(x any) { *q = append(*q, x.(*PathNode)) }

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

func (q *openSet) push(n *PathNode) { heap.Push(q, n) }

func (q *openSet) pop() *PathNode { return heap.Pop(q).(*PathNode) }
