// Package modifier holds typed numeric adjustments and their ordered
// application. Modifiers with a lower index are applied first; at the same
// index percentages are summed before they are applied, so two +50% bonuses
// give +100% rather than +125%.
package modifier

import (
	"sort"
)

type Type int

const (
	Additive Type = iota
	Multiplicative
	Percentage
)

func (t Type) String() string {
	switch t {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	case Percentage:
		return "percentage"
	default:
		return "unknown"
	}
}

// Ordering indices.
const (
	IndexBase        = 10
	IndexUnitAdd     = 20
	IndexRole        = 30
	IndexUnitNormal  = 40
	IndexGeneral     = 50
	IndexTerrain     = 60
	IndexSettlement  = 70
	IndexFinalAdjust = 90
)

// Well known ids. Sources name the game object the modifier came from.
const (
	Offence          = "model.modifier.offence"
	Defence          = "model.modifier.defence"
	OffenceAgainst   = "model.modifier.offenceAgainst"
	Veteran          = "model.modifier.veteranBonus"
	AttackBonus      = "model.modifier.attackBonus"
	Fortified        = "model.modifier.fortified"
	ArtilleryInOpen  = "model.modifier.artilleryInTheOpen"
	ArtilleryAgainst = "model.modifier.artilleryAgainstRaid"
	Ambush           = "model.modifier.ambushBonus"
	CargoPenalty     = "model.modifier.cargoPenalty"
	NavalBonus       = "model.modifier.navalOffence"
	Bombard          = "model.modifier.bombardBonus"
	PopularSupport   = "model.modifier.popularSupport"
	SettlementDef    = "model.modifier.settlementDefence"
	TerrainDef       = "model.modifier.terrainDefence"
	AutoEquip        = "model.modifier.automaticEquipment"
)

type Modifier struct {
	ID     string  `json:"id"`
	Type   Type    `json:"type"`
	Value  float64 `json:"value"`
	Source string  `json:"source,omitempty"`
	Index  int     `json:"index"`
}

func New(id string, typ Type, value float64, source string, index int) Modifier {
	return Modifier{ID: id, Type: typ, Value: value, Source: source, Index: index}
}

func (m Modifier) apply(base float64) float64 {
	switch m.Type {
	case Additive:
		return base + m.Value
	case Multiplicative:
		return base * m.Value
	case Percentage:
		return base + base*m.Value/100
	default:
		return base
	}
}

// Apply reduces mods over base in index order. The input slice is not
// modified.
func Apply(base float64, mods []Modifier) float64 {
	if len(mods) == 0 {
		return base
	}
	sorted := Sorted(mods)
	value := base
	for i := 0; i < len(sorted); {
		m := sorted[i]
		if m.Type != Percentage {
			value = m.apply(value)
			i++
			continue
		}
		pct := 0.0
		j := i
		for ; j < len(sorted) && sorted[j].Type == Percentage && sorted[j].Index == m.Index; j++ {
			pct += sorted[j].Value
		}
		value += value * pct / 100
		i = j
	}
	return value
}

// Sorted returns a copy ordered by index, then additive before
// multiplicative before percentage, then id. The sort is stable so equal
// modifiers keep insertion order.
func Sorted(mods []Modifier) []Modifier {
	out := make([]Modifier, len(mods))
	copy(out, mods)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type Set []Modifier

func (s *Set) Add(m ...Modifier) {
	*s = append(*s, m...)
}

func (s Set) Apply(base float64) float64 {
	return Apply(base, s)
}

func (s Set) ByID(id string) Set {
	out := Set{}
	for _, m := range s {
		if m.ID == id {
			out = append(out, m)
		}
	}
	return out
}

func (s Set) Has(id string) bool {
	for _, m := range s {
		if m.ID == id {
			return true
		}
	}
	return false
}
