package yamlfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

const small = `
name: skirmish
map:
  fill: plains
  rows:
    - "~..h"
    - "~.f."
    - "~~.."
players:
  - id: dutch
    kind: european
    explored: true
    stances: {arawak: war}
  - id: arawak
    kind: native
units:
  - {id: s, type: free_colonist, role: soldier, owner: dutch, x: 1, y: 0}
  - {id: b, type: brave, owner: arawak, x: 2, y: 1, moves_left: 1, state: fortified}
settlements:
  - {id: v, kind: native, owner: arawak, x: 3, y: 2}
`

func TestParse_Small(t *testing.T) {
	g, err := Parse([]byte(small))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if g.ID != "skirmish" || g.Map.Width != 4 || g.Map.Height != 3 {
		t.Fatalf("unexpected game %s %dx%d", g.ID, g.Map.Width, g.Map.Height)
	}
	got := []string{g.Map.Tile(0, 0).TypeID, g.Map.Tile(3, 0).TypeID, g.Map.Tile(2, 1).TypeID}
	if diff := cmp.Diff([]string{world.TypeOcean, world.TypeHills, world.TypeForest}, got); diff != "" {
		t.Fatalf("terrain mismatch (-want +got):\n%s", diff)
	}
	if !g.Player("arawak").AtWarWith("dutch") {
		t.Fatalf("expected symmetric war")
	}
	if !g.Map.Tile(3, 2).IsExploredBy("dutch") || g.Map.Tile(3, 2).IsExploredBy("arawak") {
		t.Fatalf("exploration not applied to dutch only")
	}
	if s := g.Unit("s"); s.MovesLeft != s.InitialMoves() || s.State != game.StateActive {
		t.Fatalf("expected defaults for soldier, got %+v", s)
	}
	if b := g.Unit("b"); b.MovesLeft != 1 || b.State != game.StateFortified {
		t.Fatalf("expected explicit brave fields, got %+v", b)
	}
	if s := g.SettlementAt(world.Position{X: 3, Y: 2}); s == nil || !s.IsNative() {
		t.Fatalf("expected native settlement at (3,2)")
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown field":   "name: x\nmap: {width: 2, height: 2, fill: plains}\ncolour: red\n",
		"no size":         "name: x\nmap: {fill: plains}\n",
		"short row":       "map:\n  rows: [\"..\", \".\"]\n",
		"bad code":        "map:\n  rows: [\".?\"]\n",
		"unknown type":    "map: {width: 2, height: 2, fill: lava}\n",
		"unknown unit":    "map: {width: 2, height: 2, fill: plains}\nplayers: [{id: a, kind: european}]\nunits: [{id: u, type: dragon, owner: a, x: 0, y: 0}]\n",
		"unknown owner":   "map: {width: 2, height: 2, fill: plains}\nunits: [{id: u, type: brave, owner: nobody, x: 0, y: 0}]\n",
		"off map unit":    "map: {width: 2, height: 2, fill: plains}\nplayers: [{id: a, kind: native}]\nunits: [{id: u, type: brave, owner: a, x: 5, y: 0}]\n",
		"bad kind":        "map: {width: 2, height: 2, fill: plains}\nplayers: [{id: a, kind: pirate}]\n",
		"bad stance":      "map: {width: 2, height: 2, fill: plains}\nplayers: [{id: a, kind: native, stances: {b: grumpy}}, {id: b, kind: native}]\n",
		"stance stranger": "map: {width: 2, height: 2, fill: plains}\nplayers: [{id: a, kind: native, stances: {c: war}}]\n",
		"tile off map":    "map: {width: 2, height: 2, fill: plains, tiles: [{x: 4, y: 4, type: hills}]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidScenario) {
				t.Fatalf("expected invalid scenario, got %v", err)
			}
		})
	}
}

func TestLoader_LoadAndList(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "skirmish.yaml"), []byte(small), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	l := Loader{Root: root}

	g, err := l.Load(context.Background(), "skirmish")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(g.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(g.Units))
	}
	if _, err := l.Load(context.Background(), "skirmish.yaml"); err != nil {
		t.Fatalf("load with extension: %v", err)
	}
	if _, err := l.Load(context.Background(), "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	names, err := l.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if diff := cmp.Diff([]string{"skirmish"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_RejectsPathTraversal(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Dir(root)
	outside := filepath.Join(parent, "outside.yaml")
	if err := os.WriteFile(outside, []byte(small), 0o644); err != nil {
		t.Fatalf("write outside: %v", err)
	}
	t.Cleanup(func() { _ = os.Remove(outside) })

	l := Loader{Root: root}
	if _, err := l.Load(context.Background(), "../outside"); !errors.Is(err, ErrInvalidScenarioPath) {
		t.Fatalf("expected path traversal to be rejected, got %v", err)
	}
	if _, err := l.Load(context.Background(), "/etc/passwd"); !errors.Is(err, ErrInvalidScenarioPath) {
		t.Fatalf("expected absolute path to be rejected, got %v", err)
	}
	if _, err := l.Load(context.Background(), " "); !errors.Is(err, ErrInvalidScenarioPath) {
		t.Fatalf("expected empty name to be rejected, got %v", err)
	}
}

func TestDemoScenario(t *testing.T) {
	g, err := Loader{Root: "../../../../scenarios"}.Load(context.Background(), "demo")
	if err != nil {
		t.Fatalf("load demo: %v", err)
	}
	if g.Unit("dutch-scout").CarrierID != "dutch-caravel" {
		t.Fatalf("expected scout aboard the caravel")
	}
	if !g.Player("dutch").AtWarWith("arawak") {
		t.Fatalf("expected dutch at war with arawak")
	}
}
