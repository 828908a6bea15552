package game

type UnitTypeID string

const (
	FreeColonist      UnitTypeID = "free_colonist"
	IndenturedServant UnitTypeID = "indentured_servant"
	IndianConvert     UnitTypeID = "indian_convert"
	VeteranSoldier    UnitTypeID = "veteran_soldier"
	ContinentalArmy   UnitTypeID = "continental_army"
	KingsRegular      UnitTypeID = "kings_regular"
	Artillery         UnitTypeID = "artillery"
	DamagedArtillery  UnitTypeID = "damaged_artillery"
	WagonTrain        UnitTypeID = "wagon_train"
	TreasureTrain     UnitTypeID = "treasure_train"
	Brave             UnitTypeID = "brave"
	Caravel           UnitTypeID = "caravel"
	Merchantman       UnitTypeID = "merchantman"
	Galleon           UnitTypeID = "galleon"
	Privateer         UnitTypeID = "privateer"
	Frigate           UnitTypeID = "frigate"
	ManOWar           UnitTypeID = "man_o_war"
)

type Ability string

const (
	AbilityNaval         Ability = "naval"
	AbilityBombard       Ability = "bombard"
	AbilityVeteran       Ability = "veteran"
	AbilityAmbushBonus   Ability = "ambush_bonus"
	AbilityAmbushPenalty Ability = "ambush_penalty"
	AbilityCaptureGoods  Ability = "capture_goods"
	AbilityCaptureUnits  Ability = "capture_units"
	AbilityCanBeCaptured Ability = "can_be_captured"
	AbilityCanBeEquipped Ability = "can_be_equipped"
	AbilityCaptureEquip  Ability = "capture_equipment"
	AbilityEvadeAttack   Ability = "evade_attack"
	AbilityPiracy        Ability = "piracy"
)

type UnitType struct {
	ID         UnitTypeID
	Offence    float64
	Defence    float64
	Moves      int
	Space      int
	SpaceTaken int
	Abilities  []Ability
	// Promotion is the type gained after a great victory.
	Promotion UnitTypeID
	// Demotion is the type left after a lost fight, if the unit has no
	// equipment to lose instead.
	Demotion UnitTypeID
	// Captured is the type a captor receives.
	Captured UnitTypeID
	// PromotionNeedsIndependence limits promotion to rebel players.
	PromotionNeedsIndependence bool
}

const (
	DefaultOffence = 0
	DefaultDefence = 1
)

var unitTypes = map[UnitTypeID]UnitType{
	FreeColonist:      {ID: FreeColonist, Defence: 1, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityCanBeCaptured}, Promotion: VeteranSoldier, Captured: FreeColonist},
	IndenturedServant: {ID: IndenturedServant, Defence: 1, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityCanBeCaptured}, Promotion: VeteranSoldier, Captured: IndenturedServant},
	IndianConvert:     {ID: IndianConvert, Defence: 1, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityCanBeCaptured}, Captured: IndianConvert},
	VeteranSoldier:    {ID: VeteranSoldier, Defence: 1, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityCanBeCaptured, AbilityVeteran}, Promotion: ContinentalArmy, PromotionNeedsIndependence: true, Captured: FreeColonist},
	ContinentalArmy:   {ID: ContinentalArmy, Defence: 1, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityCanBeCaptured, AbilityVeteran, AbilityAmbushBonus}, Captured: FreeColonist},
	KingsRegular:      {ID: KingsRegular, Offence: 1, Defence: 2, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityVeteran, AbilityAmbushPenalty}},
	Artillery:         {ID: Artillery, Offence: 7, Defence: 5, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityBombard}, Demotion: DamagedArtillery},
	DamagedArtillery:  {ID: DamagedArtillery, Offence: 5, Defence: 3, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityBombard}},
	WagonTrain:        {ID: WagonTrain, Defence: 1, Moves: 3, Space: 2, SpaceTaken: 6, Abilities: []Ability{AbilityCanBeCaptured}, Captured: WagonTrain},
	TreasureTrain:     {ID: TreasureTrain, Defence: 1, Moves: 3, SpaceTaken: 6, Abilities: []Ability{AbilityCanBeCaptured}, Captured: TreasureTrain},
	Brave:             {ID: Brave, Offence: 1, Defence: 1, Moves: 3, SpaceTaken: 1, Abilities: []Ability{AbilityCanBeEquipped, AbilityAmbushBonus, AbilityCaptureEquip}},
	Caravel:           {ID: Caravel, Defence: 2, Moves: 12, Space: 2, Abilities: []Ability{AbilityNaval, AbilityEvadeAttack}},
	Merchantman:       {ID: Merchantman, Defence: 6, Moves: 15, Space: 4, Abilities: []Ability{AbilityNaval, AbilityEvadeAttack}},
	Galleon:           {ID: Galleon, Defence: 10, Moves: 18, Space: 6, Abilities: []Ability{AbilityNaval, AbilityEvadeAttack}},
	Privateer:         {ID: Privateer, Offence: 8, Defence: 8, Moves: 24, Space: 2, Abilities: []Ability{AbilityNaval, AbilityEvadeAttack, AbilityCaptureGoods, AbilityPiracy}},
	Frigate:           {ID: Frigate, Offence: 16, Defence: 16, Moves: 18, Space: 4, Abilities: []Ability{AbilityNaval, AbilityEvadeAttack, AbilityCaptureGoods}},
	ManOWar:           {ID: ManOWar, Offence: 24, Defence: 24, Moves: 18, Space: 6, Abilities: []Ability{AbilityNaval, AbilityEvadeAttack, AbilityCaptureGoods}},
}

func LookupUnitType(id UnitTypeID) (UnitType, bool) {
	t, ok := unitTypes[id]
	return t, ok
}

func UnitTypeByID(id UnitTypeID) UnitType {
	t, ok := unitTypes[id]
	if !ok {
		panic("game: unknown unit type " + string(id))
	}
	return t
}

func (t UnitType) Has(a Ability) bool {
	for _, have := range t.Abilities {
		if have == a {
			return true
		}
	}
	return false
}

func (t UnitType) IsNaval() bool {
	return t.Has(AbilityNaval)
}
