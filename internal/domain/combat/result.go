package combat

// Result is one symbolic outcome of a combat. A resolution is an ordered
// list whose first element is always Win, Lose or NoResult.
type Result string

const (
	Win      Result = "WIN"
	Lose     Result = "LOSE"
	NoResult Result = "NO_RESULT"

	AutoEquipUnit     Result = "AUTOEQUIP_UNIT"
	BurnMissions      Result = "BURN_MISSIONS"
	CaptureAutoEquip  Result = "CAPTURE_AUTOEQUIP"
	CaptureColony     Result = "CAPTURE_COLONY"
	CaptureConvert    Result = "CAPTURE_CONVERT"
	CaptureEquip      Result = "CAPTURE_EQUIP"
	CaptureUnit       Result = "CAPTURE_UNIT"
	DamageColonyShips Result = "DAMAGE_COLONY_SHIPS"
	DamageShipAttack  Result = "DAMAGE_SHIP_ATTACK"
	DamageShipBombard Result = "DAMAGE_SHIP_BOMBARD"
	DemoteUnit        Result = "DEMOTE_UNIT"
	DestroyColony     Result = "DESTROY_COLONY"
	DestroySettlement Result = "DESTROY_SETTLEMENT"
	EvadeAttack       Result = "EVADE_ATTACK"
	EvadeBombard      Result = "EVADE_BOMBARD"
	LoseAutoEquip     Result = "LOSE_AUTOEQUIP"
	LoseEquip         Result = "LOSE_EQUIP"
	LootShip          Result = "LOOT_SHIP"
	PillageColony     Result = "PILLAGE_COLONY"
	PromoteUnit       Result = "PROMOTE_UNIT"
	SinkColonyShips   Result = "SINK_COLONY_SHIPS"
	SinkShipAttack    Result = "SINK_SHIP_ATTACK"
	SinkShipBombard   Result = "SINK_SHIP_BOMBARD"
	SlaughterUnit     Result = "SLAUGHTER_UNIT"
)

type Results []Result

func (rs Results) Has(r Result) bool {
	for _, have := range rs {
		if have == r {
			return true
		}
	}
	return false
}

// Outcome is the leading Win, Lose or NoResult.
func (rs Results) Outcome() Result {
	if len(rs) == 0 {
		return NoResult
	}
	return rs[0]
}

func (rs Results) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

func ParseResults(in []string) Results {
	out := make(Results, len(in))
	for i, s := range in {
		out[i] = Result(s)
	}
	return out
}
