package pathfind

import (
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

func plainsGame(w, h int) *game.Game {
	g := game.New("g-test", world.NewMap(w, h, world.TypePlains))
	g.AddPlayer(&game.Player{ID: "dutch", Kind: game.PlayerEuropean})
	g.AddPlayer(&game.Player{ID: "arawak", Kind: game.PlayerNative})
	return g
}

// channelGame splits the map with ocean columns 4 and 5.
func channelGame() *game.Game {
	g := plainsGame(10, 10)
	for y := 0; y < 10; y++ {
		g.Map.Tile(4, y).TypeID = world.TypeOcean
		g.Map.Tile(5, y).TypeID = world.TypeOcean
	}
	return g
}

func colonist(g *game.Game, id string, x, y int) *game.Unit {
	u := &game.Unit{ID: id, TypeID: game.FreeColonist, OwnerID: "dutch", X: x, Y: y, MovesLeft: 3}
	g.AddUnit(u)
	return u
}

func tile(g *game.Game, x, y int) *world.Tile {
	return g.Map.Tile(x, y)
}
