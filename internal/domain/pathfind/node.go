package pathfind

import (
	"fmt"

	"newworld/internal/domain/world"
)

// PathNode is one step of a path. Nodes are linked both ways once a path is
// returned; during the search only Previous is set.
type PathNode struct {
	Tile      *world.Tile
	Cost      int
	Heuristic int
	MovesLeft int
	Turns     int
	OnCarrier bool
	Previous  *PathNode
	Next      *PathNode
}

func (n *PathNode) Position() world.Position {
	return n.Tile.Position()
}

func (n *PathNode) priority() int {
	return n.Cost + n.Heuristic
}

func (n *PathNode) Last() *PathNode {
	cur := n
	for cur.Next != nil {
		cur = cur.Next
	}
	return cur
}

func (n *PathNode) First() *PathNode {
	cur := n
	for cur.Previous != nil {
		cur = cur.Previous
	}
	return cur
}

// Steps lists n and every node after it.
func (n *PathNode) Steps() []*PathNode {
	out := []*PathNode{}
	for cur := n; cur != nil; cur = cur.Next {
		out = append(out, cur)
	}
	return out
}

func (n *PathNode) Len() int {
	return len(n.Steps())
}

// EmbarkIndex is the first step taken aboard a carrier, or -1.
func (n *PathNode) EmbarkIndex() int {
	for i, s := range n.Steps() {
		if s.OnCarrier {
			return i
		}
	}
	return -1
}

func (n *PathNode) String() string {
	return fmt.Sprintf("(%d,%d) cost=%d turns=%d moves=%d carrier=%v", n.Tile.X, n.Tile.Y, n.Cost, n.Turns, n.MovesLeft, n.OnCarrier)
}

// better orders candidate nodes for the same tile.
func (n *PathNode) better(o *PathNode) bool {
	if n.Cost != o.Cost {
		return n.Cost < o.Cost
	}
	return n.Turns < o.Turns
}

// link fixes Next pointers from the start of the chain to n.
func link(n *PathNode) *PathNode {
	cur := n
	cur.Next = nil
	for cur.Previous != nil {
		cur.Previous.Next = cur
		cur = cur.Previous
	}
	return cur
}
