package game

type RoleID string

const (
	RoleDefault       RoleID = "default"
	RoleSoldier       RoleID = "soldier"
	RoleDragoon       RoleID = "dragoon"
	RolePioneer       RoleID = "pioneer"
	RoleMissionary    RoleID = "missionary"
	RoleScout         RoleID = "scout"
	RoleArmedBrave    RoleID = "armed_brave"
	RoleMountedBrave  RoleID = "mounted_brave"
	RoleNativeDragoon RoleID = "native_dragoon"
)

type Equipment string

const (
	EquipMuskets Equipment = "muskets"
	EquipHorses  Equipment = "horses"
	EquipTools   Equipment = "tools"
	EquipBible   Equipment = "bible"
)

type Role struct {
	ID        RoleID
	Offence   float64
	Defence   float64
	Moves     int
	Equipment []Equipment
	// Downgrade is the role left after losing a fight.
	Downgrade RoleID
	Military  bool
}

var roles = map[RoleID]Role{
	RoleDefault:       {ID: RoleDefault},
	RoleSoldier:       {ID: RoleSoldier, Offence: 2, Defence: 1, Equipment: []Equipment{EquipMuskets}, Downgrade: RoleDefault, Military: true},
	RoleDragoon:       {ID: RoleDragoon, Offence: 3, Defence: 2, Moves: 9, Equipment: []Equipment{EquipMuskets, EquipHorses}, Downgrade: RoleSoldier, Military: true},
	RolePioneer:       {ID: RolePioneer, Equipment: []Equipment{EquipTools}},
	RoleMissionary:    {ID: RoleMissionary, Equipment: []Equipment{EquipBible}},
	RoleScout:         {ID: RoleScout, Moves: 9, Equipment: []Equipment{EquipHorses}, Downgrade: RoleDefault},
	RoleArmedBrave:    {ID: RoleArmedBrave, Offence: 2, Defence: 1, Equipment: []Equipment{EquipMuskets}, Downgrade: RoleDefault, Military: true},
	RoleMountedBrave:  {ID: RoleMountedBrave, Offence: 1, Defence: 1, Moves: 9, Equipment: []Equipment{EquipHorses}, Downgrade: RoleDefault, Military: true},
	RoleNativeDragoon: {ID: RoleNativeDragoon, Offence: 3, Defence: 2, Moves: 9, Equipment: []Equipment{EquipMuskets, EquipHorses}, Downgrade: RoleArmedBrave, Military: true},
}

func LookupRole(id RoleID) (Role, bool) {
	if id == "" {
		id = RoleDefault
	}
	r, ok := roles[id]
	return r, ok
}

func RoleByID(id RoleID) Role {
	r, ok := LookupRole(id)
	if !ok {
		panic("game: unknown role " + string(id))
	}
	return r
}

func (r Role) IsDefault() bool {
	return r.ID == RoleDefault
}

func (r Role) HasEquipment(e Equipment) bool {
	for _, have := range r.Equipment {
		if have == e {
			return true
		}
	}
	return false
}

// LostEquipment lists what a unit drops when downgraded from r.
func (r Role) LostEquipment() []Equipment {
	down := RoleByID(r.Downgrade)
	out := []Equipment{}
	for _, e := range r.Equipment {
		if !down.HasEquipment(e) {
			out = append(out, e)
		}
	}
	return out
}

// CaptureRole is the native role held after adding captured equipment to
// the current one.
func CaptureRole(current RoleID, captured []Equipment) RoleID {
	muskets, horses := false, false
	for _, e := range RoleByID(current).Equipment {
		muskets = muskets || e == EquipMuskets
		horses = horses || e == EquipHorses
	}
	for _, e := range captured {
		muskets = muskets || e == EquipMuskets
		horses = horses || e == EquipHorses
	}
	switch {
	case muskets && horses:
		return RoleNativeDragoon
	case muskets:
		return RoleArmedBrave
	case horses:
		return RoleMountedBrave
	default:
		return RoleDefault
	}
}
