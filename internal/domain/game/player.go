package game

type PlayerKind string

const (
	PlayerEuropean PlayerKind = "european"
	PlayerRebel    PlayerKind = "rebel"
	PlayerRoyal    PlayerKind = "royal"
	PlayerNative   PlayerKind = "native"
)

type Stance string

const (
	StanceUncontacted Stance = "uncontacted"
	StancePeace       Stance = "peace"
	StanceCeaseFire   Stance = "cease_fire"
	StanceAlliance    Stance = "alliance"
	StanceWar         Stance = "war"
)

type Player struct {
	ID     string     `json:"id"`
	Nation string     `json:"nation"`
	Kind   PlayerKind `json:"kind"`
	// Percentage bonuses granted by national advantages and founding
	// fathers.
	OffenceAgainstNatives int `json:"offence_against_natives,omitempty"`
	NavalOffenceBonus     int `json:"naval_offence_bonus,omitempty"`
	// Colonists pick up stored muskets when their colony is attacked.
	AutomaticEquipment bool              `json:"automatic_equipment,omitempty"`
	Stances            map[string]Stance `json:"stances,omitempty"`
}

func (p *Player) IsEuropean() bool {
	return p.Kind == PlayerEuropean || p.Kind == PlayerRebel || p.Kind == PlayerRoyal
}

func (p *Player) IsNative() bool {
	return p.Kind == PlayerNative
}

func (p *Player) IsRoyal() bool {
	return p.Kind == PlayerRoyal
}

func (p *Player) StanceTowards(other string) Stance {
	if other == p.ID {
		return StanceAlliance
	}
	if s, ok := p.Stances[other]; ok {
		return s
	}
	return StanceUncontacted
}

func (p *Player) AtWarWith(other string) bool {
	return p.StanceTowards(other) == StanceWar
}

// SetStance records a symmetric stance between two players.
func SetStance(a, b *Player, s Stance) {
	if a.Stances == nil {
		a.Stances = map[string]Stance{}
	}
	if b.Stances == nil {
		b.Stances = map[string]Stance{}
	}
	a.Stances[b.ID] = s
	b.Stances[a.ID] = s
}
