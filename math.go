package sphrot

import "math"

const (
	twoPi = 2 * math.Pi

	// poleEpsilon keeps arccos(z/r) finite when r is zero.
	poleEpsilon = 1e-30

	// parallelTolerance is the cross product length below which two unit
	// vectors are treated as parallel.
	parallelTolerance = 1e-12
)

func DegToRad(angle float64) float64 {
	return angle * math.Pi / 180
}

func RadToDeg(angle float64) float64 {
	return angle * 180 / math.Pi
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// wrapPhi maps an azimuth into [0, 2π). Values already inside the closed
// interval [0, 2π] are returned untouched so a grid ending at 2π still
// sees its last column.
func wrapPhi(phi float64) float64 {
	if phi >= 0 && phi <= twoPi {
		return phi
	}
	phi = math.Mod(phi, twoPi)
	if phi < 0 {
		phi += twoPi
	}
	return phi
}

func safeAcos(x float64) float64 {
	return math.Acos(clamp(x, -1, 1))
}
