// Package yamlfile loads prepared games from YAML scenario files.
package yamlfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"newworld/internal/app/ports"
	"newworld/internal/domain/game"
	"newworld/internal/domain/world"
)

var (
	ErrInvalidScenarioPath = errors.New("invalid scenario path")
	ErrInvalidScenario     = errors.New("invalid scenario")
)

const ext = ".yaml"

var terrainCodes = map[rune]string{
	'~': world.TypeOcean,
	'=': world.TypeHighSeas,
	'o': world.TypeLake,
	'.': world.TypePlains,
	'g': world.TypeGrassland,
	'p': world.TypePrairie,
	's': world.TypeSavannah,
	'w': world.TypeMarsh,
	'W': world.TypeSwamp,
	'd': world.TypeDesert,
	't': world.TypeTundra,
	'a': world.TypeArctic,
	'f': world.TypeForest,
	'c': world.TypeConifer,
	'r': world.TypeRainForest,
	'h': world.TypeHills,
	'm': world.TypeMountains,
}

var knownStances = map[game.Stance]bool{
	game.StanceUncontacted: true,
	game.StancePeace:       true,
	game.StanceCeaseFire:   true,
	game.StanceAlliance:    true,
	game.StanceWar:         true,
}

type Loader struct {
	Root string
}

func (l Loader) Load(_ context.Context, name string) (*game.Game, error) {
	path, err := secureJoin(l.Root, strings.TrimSuffix(name, ext)+ext)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("scenario %q: %w", name, ports.ErrNotFound)
		}
		return nil, err
	}
	return Parse(b)
}

// List returns the scenario names found under Root.
func (l Loader) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(out)
	return out, nil
}

// Parse builds and validates a game from scenario YAML.
func Parse(b []byte) (*game.Game, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	g, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	return g, nil
}

func build(doc document) (*game.Game, error) {
	m, err := buildMap(doc.Map)
	if err != nil {
		return nil, err
	}
	g := game.New(doc.Name, m)
	if g.ID == "" {
		g.ID = "scenario"
	}
	if doc.Turn > 0 {
		g.Turn = doc.Turn
	}

	for _, p := range doc.Players {
		if p.ID == "" || g.Player(p.ID) != nil {
			return nil, fmt.Errorf("bad player id %q", p.ID)
		}
		kind := game.PlayerKind(p.Kind)
		switch kind {
		case game.PlayerEuropean, game.PlayerRebel, game.PlayerRoyal, game.PlayerNative:
		default:
			return nil, fmt.Errorf("player %s has unknown kind %q", p.ID, p.Kind)
		}
		nation := p.Nation
		if nation == "" {
			nation = p.ID
		}
		g.AddPlayer(&game.Player{
			ID:                    p.ID,
			Nation:                nation,
			Kind:                  kind,
			OffenceAgainstNatives: p.OffenceAgainstNatives,
			NavalOffenceBonus:     p.NavalOffenceBonus,
			AutomaticEquipment:    p.AutomaticEquipment,
		})
		if p.Explored {
			for i := range m.Tiles {
				m.Tiles[i].Explore(p.ID)
			}
		}
	}
	for _, p := range doc.Players {
		for other, stance := range p.Stances {
			o := g.Player(other)
			if o == nil {
				return nil, fmt.Errorf("player %s has stance towards unknown %q", p.ID, other)
			}
			if !knownStances[game.Stance(stance)] {
				return nil, fmt.Errorf("player %s has unknown stance %q", p.ID, stance)
			}
			game.SetStance(g.Player(p.ID), o, game.Stance(stance))
		}
	}

	for _, s := range doc.Settlements {
		kind := game.SettlementKind(s.Kind)
		if kind == "" {
			kind = game.KindColony
		}
		g.AddSettlement(&game.Settlement{
			ID:              s.ID,
			Name:            s.Name,
			Kind:            kind,
			OwnerID:         s.Owner,
			X:               s.X,
			Y:               s.Y,
			Stockade:        game.Stockade(s.Stockade),
			SonsOfLiberty:   s.SonsOfLiberty,
			Muskets:         s.Muskets,
			Horses:          s.Horses,
			Goods:           s.Goods,
			Buildings:       s.Buildings,
			Capital:         s.Capital,
			MissionaryOwner: s.MissionaryOwner,
		})
	}

	for _, us := range doc.Units {
		role := game.RoleID(us.Role)
		if role == "" {
			role = game.RoleDefault
		}
		state := game.UnitState(us.State)
		if state == "" {
			state = game.StateActive
		}
		u := &game.Unit{
			ID:        us.ID,
			TypeID:    game.UnitTypeID(us.Type),
			RoleID:    role,
			OwnerID:   us.Owner,
			X:         us.X,
			Y:         us.Y,
			State:     state,
			CarrierID: us.Carrier,
			Goods:     us.Goods,
			Damaged:   us.Damaged,
		}
		if _, ok := game.LookupUnitType(u.TypeID); !ok {
			return nil, fmt.Errorf("unit %s has unknown type %q", us.ID, us.Type)
		}
		if _, ok := game.LookupRole(u.RoleID); !ok {
			return nil, fmt.Errorf("unit %s has unknown role %q", us.ID, us.Role)
		}
		if us.MovesLeft != nil {
			u.MovesLeft = *us.MovesLeft
		} else {
			u.MovesLeft = u.InitialMoves()
		}
		g.AddUnit(u)
	}
	return g, nil
}

func buildMap(spec mapSpec) (*world.Map, error) {
	width, height := spec.Width, spec.Height
	if len(spec.Rows) > 0 {
		if height == 0 {
			height = len(spec.Rows)
		}
		if width == 0 {
			width = len([]rune(spec.Rows[0]))
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("map needs a positive size, got %dx%d", width, height)
	}
	fill := spec.Fill
	if fill == "" {
		fill = world.TypeOcean
	}
	m := world.NewMap(width, height, fill)

	if len(spec.Rows) > 0 && len(spec.Rows) != height {
		return nil, fmt.Errorf("map has %d rows, want %d", len(spec.Rows), height)
	}
	for y, row := range spec.Rows {
		codes := []rune(row)
		if len(codes) != width {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", y, len(codes), width)
		}
		for x, c := range codes {
			typeID, ok := terrainCodes[c]
			if !ok {
				return nil, fmt.Errorf("unknown terrain code %q at (%d,%d)", c, x, y)
			}
			m.Tile(x, y).TypeID = typeID
		}
	}
	for _, ts := range spec.Tiles {
		t := m.Tile(ts.X, ts.Y)
		if t == nil {
			return nil, fmt.Errorf("tile (%d,%d) off map", ts.X, ts.Y)
		}
		if ts.Type != "" {
			t.TypeID = ts.Type
		}
		t.River = world.RiverLevel(ts.River)
		t.Road = ts.Road
		t.Resource = ts.Resource
	}
	return m, nil
}

func secureJoin(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" || rel == ext {
		return "", ErrInvalidScenarioPath
	}
	if filepath.IsAbs(rel) {
		return "", ErrInvalidScenarioPath
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	target := filepath.Clean(filepath.Join(rootAbs, rel))
	prefix := rootAbs + string(filepath.Separator)
	if target != rootAbs && !strings.HasPrefix(target, prefix) {
		return "", ErrInvalidScenarioPath
	}
	return target, nil
}
