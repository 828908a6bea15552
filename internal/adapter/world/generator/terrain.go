package generator

import "newworld/internal/domain/world"

const (
	seaLevel      = 0.42
	hillLevel     = 0.70
	mountainLevel = 0.82
)

func genTile(seed int64, x, y int) world.Tile {
	elevation := 0.7*valueNoise(seed, x, y, 6) + 0.3*valueNoise(seed+1, x, y, 3)
	moisture := valueNoise(seed+2, x, y, 5)
	t := world.Tile{X: x, Y: y, TypeID: terrainFor(elevation, moisture)}
	if t.TypeID == world.TypeOcean {
		return t
	}
	h := tileSeed(seed+3, x, y)
	if h%19 == 0 {
		t.Resource = resourceFor(t.TypeID)
	}
	if t.TypeID != world.TypeMountains && elevation < seaLevel+0.06 && h%5 == 0 {
		t.River = world.RiverMinor
	}
	return t
}

func terrainFor(elevation, moisture float64) string {
	switch {
	case elevation < seaLevel:
		return world.TypeOcean
	case elevation >= mountainLevel:
		return world.TypeMountains
	case elevation >= hillLevel:
		return world.TypeHills
	}
	switch {
	case moisture < 0.15:
		return world.TypeDesert
	case moisture < 0.30:
		return world.TypePrairie
	case moisture < 0.45:
		return world.TypePlains
	case moisture < 0.60:
		return world.TypeGrassland
	case moisture < 0.75:
		return world.TypeForest
	case moisture < 0.85:
		return world.TypeConifer
	case moisture < 0.92:
		return world.TypeMarsh
	default:
		return world.TypeSwamp
	}
}

func resourceFor(typeID string) string {
	switch typeID {
	case world.TypeHills:
		return "ore"
	case world.TypeMountains:
		return "silver"
	case world.TypeForest, world.TypeConifer:
		return "game"
	case world.TypeMarsh, world.TypeSwamp:
		return "minerals"
	case world.TypeDesert:
		return "oasis"
	case world.TypePrairie:
		return "cotton"
	case world.TypePlains:
		return "grain"
	default:
		return "tobacco"
	}
}

// valueNoise interpolates hashed lattice values spaced scale tiles apart.
// The result is in [0,1).
func valueNoise(seed int64, x, y, scale int) float64 {
	gx, gy := floorDiv(x, scale), floorDiv(y, scale)
	fx := smooth(float64(x-gx*scale) / float64(scale))
	fy := smooth(float64(y-gy*scale) / float64(scale))
	v00 := lattice(seed, gx, gy)
	v10 := lattice(seed, gx+1, gy)
	v01 := lattice(seed, gx, gy+1)
	v11 := lattice(seed, gx+1, gy+1)
	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lattice(seed int64, x, y int) float64 {
	return float64(tileSeed(seed, x, y)%10000) / 10000
}

func tileSeed(seed int64, x, y int) uint64 {
	v := uint64(int64(x)*73856093^int64(y)*19349663) ^ uint64(seed)*0x9e3779b97f4a7c15
	// splitmix64 finaliser
	v ^= v >> 30
	v *= 0xbf58476d1ce4e5b9
	v ^= v >> 27
	v *= 0x94d049bb133111eb
	v ^= v >> 31
	return v
}
