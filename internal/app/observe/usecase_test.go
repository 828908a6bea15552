package observe

import (
	"context"
	"errors"
	"testing"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

func TestUseCase_RejectsEmptyIDs(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g-1"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_UnknownUnit(t *testing.T) {
	uc := UseCase{Games: observeGames{g: observeGame()}}
	if _, err := uc.Execute(context.Background(), Request{GameID: "g-1", UnitID: "ghost"}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUseCase_ViewWindow(t *testing.T) {
	uc := UseCase{Games: observeGames{g: observeGame()}}
	got, err := uc.Execute(context.Background(), Request{GameID: "g-1", UnitID: "colonist"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.View.Radius != baseViewRadius || got.View.Center != (world.Position{X: 3, Y: 3}) {
		t.Fatalf("unexpected view: %+v", got.View)
	}
	if len(got.Tiles) != 9 {
		t.Fatalf("expected centre plus eight neighbours, got %d tiles", len(got.Tiles))
	}

	byPos := map[world.Position]ObservedTile{}
	for _, tile := range got.Tiles {
		byPos[tile.Pos] = tile
	}
	if fog := byPos[world.Position{X: 2, Y: 3}]; fog.Type != "unknown" || fog.Explored {
		t.Fatalf("expected unexplored tile to be hidden, got %+v", fog)
	}
	if east := byPos[world.Position{X: 4, Y: 3}]; east.MoveCost <= 0 || east.Type != "plains" {
		t.Fatalf("expected neighbour move cost, got %+v", east)
	}
	if centre := byPos[world.Position{X: 3, Y: 3}]; centre.MoveCost != 0 {
		t.Fatalf("centre tile should carry no move cost, got %+v", centre)
	}

	if len(got.Units) != 1 || got.Units[0].ID != "brave" || !got.Units[0].Hostile {
		t.Fatalf("expected one hostile brave, got %+v", got.Units)
	}
	if len(got.Settlements) != 1 || got.Settlements[0].ID != "village" || !got.Settlements[0].Hostile {
		t.Fatalf("expected hostile village, got %+v", got.Settlements)
	}
}

func TestUseCase_ScoutSeesFurther(t *testing.T) {
	g := observeGame()
	g.Unit("colonist").RoleID = game.RoleScout
	uc := UseCase{Games: observeGames{g: g}}

	got, err := uc.Execute(context.Background(), Request{GameID: "g-1", UnitID: "colonist"})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.View.Radius != scoutViewRadius {
		t.Fatalf("radius mismatch: got=%d want=%d", got.View.Radius, scoutViewRadius)
	}
	if len(got.Tiles) <= 9 {
		t.Fatalf("expected a wider window, got %d tiles", len(got.Tiles))
	}
	for _, tile := range got.Tiles {
		if d := got.View.Center.Distance(tile.Pos); d > scoutViewRadius {
			t.Fatalf("tile %+v outside radius (%d)", tile.Pos, d)
		}
	}
}

// observeGame puts a dutch colonist at (3,3) with an arawak brave east of
// it and the arawak village two rows south. Tile (2,3) is unexplored and
// hides a second brave.
func observeGame() *game.Game {
	g := game.New("g-1", world.NewMap(7, 7, "plains"))
	dutch := &game.Player{ID: "dutch", Nation: "dutch", Kind: game.PlayerEuropean}
	arawak := &game.Player{ID: "arawak", Nation: "arawak", Kind: game.PlayerNative}
	g.AddPlayer(dutch)
	g.AddPlayer(arawak)
	game.SetStance(dutch, arawak, game.StanceWar)
	for i := range g.Map.Tiles {
		if g.Map.Tiles[i].X == 2 && g.Map.Tiles[i].Y == 3 {
			continue
		}
		g.Map.Tiles[i].Explore("dutch")
	}
	g.AddUnit(&game.Unit{ID: "colonist", TypeID: game.FreeColonist, OwnerID: "dutch", X: 3, Y: 3, MovesLeft: 3})
	g.AddUnit(&game.Unit{ID: "brave", TypeID: game.Brave, OwnerID: "arawak", X: 4, Y: 3})
	g.AddUnit(&game.Unit{ID: "hidden", TypeID: game.Brave, OwnerID: "arawak", X: 2, Y: 3})
	g.AddSettlement(&game.Settlement{ID: "village", Name: "Village", Kind: game.KindNative, OwnerID: "arawak", X: 3, Y: 5})
	g.Map.Tile(3, 5).SettlementID = "village"
	return g
}

type observeGames struct {
	g *game.Game
}

func (r observeGames) GetByID(_ context.Context, gameID string) (*game.Game, error) {
	if r.g == nil || r.g.ID != gameID {
		return nil, ports.ErrNotFound
	}
	return r.g, nil
}

func (r observeGames) SaveWithVersion(_ context.Context, _ *game.Game, _ int64) error {
	return nil
}
