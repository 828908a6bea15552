// Package pathfind searches the isometric map for unit paths. FindPath is
// an A* search towards a known tile, Search a Dijkstra search for whatever
// a GoalDecider accepts. Both understand units travelling aboard a carrier
// and disembarking onto land.
package pathfind

import (
	"math"

	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

type Finder struct {
	Game *game.Game
}

func NewFinder(g *game.Game) Finder {
	if g == nil {
		panic("pathfind: nil game")
	}
	return Finder{Game: g}
}

// FindPath returns the first node after start on the cheapest path from
// start to end, or nil when end cannot be reached. A nil carrier uses the
// carrier the unit is aboard, if any. A nil cost decider uses
// BaseCostDecider with end as its target.
func (f Finder) FindPath(u *game.Unit, start, end *world.Tile, carrier *game.Unit, cd CostDecider) *PathNode {
	if u == nil || start == nil || end == nil {
		panic("pathfind: FindPath with nil argument")
	}
	if start.X == end.X && start.Y == end.Y {
		panic("pathfind: FindPath start equals end")
	}
	if cd == nil {
		cd = BaseCostDecider{Game: f.Game, Target: end}
	}
	target := end.Position()
	heuristic := func(t *world.Tile) int {
		return t.Position().Distance(target) * world.MinimumMoveCost
	}
	goal := f.search(u, start, NewLocationGoal(target), cd, math.MaxInt, f.carrierFor(u, carrier), heuristic)
	if goal == nil {
		return nil
	}
	return link(goal).Next
}

// Search runs until gd accepts a node as a hard goal or the frontier passes
// maxTurns, and returns the whole path starting with the start node.
func (f Finder) Search(u *game.Unit, start *world.Tile, gd GoalDecider, cd CostDecider, maxTurns int, carrier *game.Unit) *PathNode {
	if u == nil || start == nil || gd == nil {
		panic("pathfind: Search with nil argument")
	}
	if cd == nil {
		cd = BaseCostDecider{Game: f.Game}
	}
	if maxTurns < 0 {
		maxTurns = math.MaxInt
	}
	goal := f.search(u, start, gd, cd, maxTurns, f.carrierFor(u, carrier), nil)
	if goal == nil {
		return nil
	}
	return link(goal)
}

func (f Finder) carrierFor(u *game.Unit, carrier *game.Unit) *game.Unit {
	if carrier != nil || u.IsNaval() {
		if carrier != nil && u.IsNaval() {
			panic("pathfind: naval unit cannot use a carrier")
		}
		return carrier
	}
	if u.CarrierID != "" {
		return f.Game.Unit(u.CarrierID)
	}
	return nil
}

func (f Finder) search(u *game.Unit, start *world.Tile, gd GoalDecider, cd CostDecider, maxTurns int, carrier *game.Unit, heuristic func(*world.Tile) int) *PathNode {
	onCarrier := carrier != nil && (u.CarrierID == carrier.ID || !start.IsLand())
	first := &PathNode{Tile: start, MovesLeft: u.MovesLeft, OnCarrier: onCarrier}
	if onCarrier {
		first.MovesLeft = carrier.MovesLeft
	}
	if heuristic != nil {
		first.Heuristic = heuristic(start)
	}

	best := map[world.Position]*PathNode{start.Position(): first}
	closed := map[world.Position]bool{}
	open := &openSet{}
	open.push(first)

	for open.Len() > 0 {
		cur := open.pop()
		pos := cur.Position()
		if closed[pos] || best[pos] != cur {
			continue
		}
		closed[pos] = true
		if cur.Turns > maxTurns {
			continue
		}
		if gd.Check(u, cur) && !gd.HasSubGoals() {
			return gd.Goal()
		}

		for _, next := range f.Game.Map.Neighbours(cur.Tile) {
			npos := next.Position()
			if closed[npos] {
				continue
			}
			node := f.step(u, carrier, cur, next, cd)
			if node == nil {
				continue
			}
			if heuristic != nil {
				node.Heuristic = heuristic(next)
			}
			if old, ok := best[npos]; ok && !node.better(old) {
				continue
			}
			best[npos] = node
			open.push(node)
		}
	}
	return gd.Goal()
}

// step builds the node for moving from cur onto next, or nil when the move
// is illegal. Boarding and leaving the carrier switch whose moves are
// counted: the carrier's while aboard, the unit's own on land.
func (f Finder) step(u, carrier *game.Unit, cur *PathNode, next *world.Tile, cd CostDecider) *PathNode {
	var (
		sc        StepCost
		onCarrier bool
	)
	switch {
	case cur.OnCarrier && !next.IsLand():
		sc = cd.Step(carrier, cur.Tile, next, cur.MovesLeft)
		onCarrier = true
	case cur.OnCarrier:
		// Disembark. A unit still in its starting turn keeps its own moves,
		// later turns start fresh.
		moves := u.MovesLeft
		if cur.Turns > 0 {
			moves = u.InitialMoves()
		}
		sc = cd.Step(u, cur.Tile, next, moves)
	case !next.IsLand() && carrier != nil && !u.IsNaval():
		if !carrier.CanCarry(u) {
			return nil
		}
		moves := carrier.MovesLeft
		if cur.Turns > 0 {
			moves = carrier.InitialMoves()
		}
		sc = cd.Step(carrier, cur.Tile, next, moves)
		onCarrier = true
	default:
		sc = cd.Step(u, cur.Tile, next, cur.MovesLeft)
	}
	if !sc.Legal() {
		return nil
	}
	return &PathNode{
		Tile:      next,
		Cost:      cur.Cost + sc.Cost,
		MovesLeft: sc.MovesLeft,
		Turns:     cur.Turns + sc.NewTurns,
		OnCarrier: onCarrier,
		Previous:  cur,
	}
}
