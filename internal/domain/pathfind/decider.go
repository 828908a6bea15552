package pathfind

import (
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

// IllegalMove is the cost reported for a step that may not be taken.
const IllegalMove = -1

type StepCost struct {
	Cost      int
	MovesLeft int
	NewTurns  int
}

func (s StepCost) Legal() bool {
	return s.Cost != IllegalMove
}

func illegal() StepCost {
	return StepCost{Cost: IllegalMove}
}

// CostDecider prices a single step for a unit that has movesLeft thirds of
// a move remaining this turn.
type CostDecider interface {
	Step(u *game.Unit, from, to *world.Tile, movesLeft int) StepCost
}

// GoalDecider accepts nodes as search goals. Check records the node when it
// qualifies. A decider with sub goals is soft: the search keeps running to
// look for a better candidate until the frontier or turn limit ends it.
type GoalDecider interface {
	Check(u *game.Unit, n *PathNode) bool
	HasSubGoals() bool
	Goal() *PathNode
}

// BaseCostDecider applies the standard movement rules: land units stay on
// land, ships stay on water or enter their owner's settlements, foreign
// settlements and units block the way unless they are the Target.
type BaseCostDecider struct {
	Game   *game.Game
	Target *world.Tile
	// RequireExplored forbids stepping onto tiles the owner has not seen.
	RequireExplored bool
}

func (d BaseCostDecider) Step(u *game.Unit, from, to *world.Tile, movesLeft int) StepCost {
	if !d.legal(u, to) {
		return illegal()
	}
	initial := u.InitialMoves()
	cost := d.moveCost(u, from, to)
	if cost <= movesLeft {
		return StepCost{Cost: cost, MovesLeft: movesLeft - cost}
	}
	// A third or two of a move counts as a whole one, and a unit that has
	// not moved yet can always take one step.
	if movesLeft > 0 && (movesLeft+2 >= initial || cost <= movesLeft+2 || to.HasSettlement()) {
		return StepCost{Cost: movesLeft, MovesLeft: 0}
	}
	cost = min(cost, initial)
	return StepCost{Cost: movesLeft + cost, MovesLeft: initial - cost, NewTurns: 1}
}

func (d BaseCostDecider) moveCost(u *game.Unit, from, to *world.Tile) int {
	if u.IsNaval() {
		return to.Type().BasicMoveCost
	}
	return from.MoveCost(to)
}

func (d BaseCostDecider) legal(u *game.Unit, to *world.Tile) bool {
	if d.RequireExplored && !to.IsExploredBy(u.OwnerID) {
		return false
	}
	isTarget := d.Target != nil && d.Target.X == to.X && d.Target.Y == to.Y
	if s := d.Game.SettlementAt(to.Position()); s != nil && s.OwnerID != u.OwnerID && !isTarget {
		return false
	}
	if u.IsNaval() {
		if to.IsLand() {
			s := d.Game.SettlementAt(to.Position())
			if s == nil || s.OwnerID != u.OwnerID {
				return false
			}
		}
	} else if !to.IsLand() {
		return false
	}
	if !isTarget && d.Game.HasForeignUnits(to.Position(), u.OwnerID) {
		return false
	}
	return true
}

// LocationGoal is a hard goal accepting a single tile.
type LocationGoal struct {
	Target world.Position
	best   *PathNode
}

func NewLocationGoal(p world.Position) *LocationGoal {
	return &LocationGoal{Target: p}
}

func (g *LocationGoal) Check(_ *game.Unit, n *PathNode) bool {
	if n.Position() == g.Target {
		g.best = n
		return true
	}
	return false
}

func (g *LocationGoal) HasSubGoals() bool { return false }

func (g *LocationGoal) Goal() *PathNode { return g.best }

// PredicateGoal is a hard goal accepting the first node matching Accept.
type PredicateGoal struct {
	Accept func(u *game.Unit, n *PathNode) bool
	best   *PathNode
}

func (g *PredicateGoal) Check(u *game.Unit, n *PathNode) bool {
	if g.Accept(u, n) {
		g.best = n
		return true
	}
	return false
}

func (g *PredicateGoal) HasSubGoals() bool { return false }

func (g *PredicateGoal) Goal() *PathNode { return g.best }

// ScoredGoal is a soft goal keeping the node with the highest positive
// score, preferring the cheaper node on equal scores.
type ScoredGoal struct {
	Score     func(u *game.Unit, n *PathNode) int
	best      *PathNode
	bestScore int
}

func (g *ScoredGoal) Check(u *game.Unit, n *PathNode) bool {
	s := g.Score(u, n)
	if s <= 0 {
		return false
	}
	if g.best == nil || s > g.bestScore || (s == g.bestScore && n.better(g.best)) {
		g.best = n
		g.bestScore = s
		return true
	}
	return false
}

func (g *ScoredGoal) HasSubGoals() bool { return true }

func (g *ScoredGoal) Goal() *PathNode { return g.best }

// OwnSettlementGoal accepts the closest settlement owned by the unit's
// owner, other than the one the search starts in.
func OwnSettlementGoal(g *game.Game) GoalDecider {
	return &PredicateGoal{Accept: func(u *game.Unit, n *PathNode) bool {
		if n.Previous == nil {
			return false
		}
		s := g.SettlementAt(n.Position())
		return s != nil && s.OwnerID == u.OwnerID
	}}
}

// CoastGoal accepts the closest land tile next to water.
func CoastGoal(g *game.Game) GoalDecider {
	return &PredicateGoal{Accept: func(_ *game.Unit, n *PathNode) bool {
		return g.Map.IsCoastal(n.Tile)
	}}
}
