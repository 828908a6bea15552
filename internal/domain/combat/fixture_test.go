package combat

import (
	"math"

	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

// battleGame is a 10x10 plains map with ocean from column 7 on.
func battleGame() *game.Game {
	m := world.NewMap(10, 10, world.TypePlains)
	for y := 0; y < 10; y++ {
		for x := 7; x < 10; x++ {
			m.Tile(x, y).TypeID = world.TypeOcean
		}
	}
	g := game.New("g-battle", m)
	g.AddPlayer(&game.Player{ID: "dutch", Kind: game.PlayerEuropean})
	g.AddPlayer(&game.Player{ID: "english", Kind: game.PlayerEuropean})
	g.AddPlayer(&game.Player{ID: "arawak", Kind: game.PlayerNative})
	g.AddPlayer(&game.Player{ID: "crown", Kind: game.PlayerRoyal})
	g.AddPlayer(&game.Player{ID: "rebels", Kind: game.PlayerRebel})
	return g
}

func addUnit(g *game.Game, id string, t game.UnitTypeID, role game.RoleID, owner string, x, y int) *game.Unit {
	u := &game.Unit{ID: id, TypeID: t, RoleID: role, OwnerID: owner, X: x, Y: y, MovesLeft: game.UnitTypeByID(t).Moves, State: game.StateActive}
	g.AddUnit(u)
	return u
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
