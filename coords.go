package sphrot

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// SphToCart uses the physics convention: theta is the polar angle from +z,
// phi the azimuth from +x.
func SphToCart(r, theta, phi float64) r3.Vec {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return r3.Vec{X: r * st * cp, Y: r * st * sp, Z: r * ct}
}

// CartToSph is the inverse of SphToCart with phi in [0, 2π). At the origin
// theta is π/2 and phi is 0; on the z axis phi is 0.
func CartToSph(p r3.Vec) (r, theta, phi float64) {
	r = r3.Norm(p)
	theta = safeAcos(p.Z / (r + poleEpsilon))
	phi = math.Atan2(p.Y, p.X)
	if phi < 0 {
		phi += twoPi
	}
	return r, theta, phi
}

// SphBasis returns the local orthonormal frame (r̂, θ̂, φ̂) at (theta, phi).
func SphBasis(theta, phi float64) (rhat, thetaHat, phiHat r3.Vec) {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	rhat = r3.Vec{X: st * cp, Y: st * sp, Z: ct}
	thetaHat = r3.Vec{X: ct * cp, Y: ct * sp, Z: -st}
	phiHat = r3.Vec{X: -sp, Y: cp}
	return
}

func PolarToCart(r, phi float64) vec2d.T {
	s, c := math.Sincos(phi)
	return vec2d.T{r * c, r * s}
}

// CartToPolar returns phi in [0, 2π).
func CartToPolar(p vec2d.T) (r, phi float64) {
	r = math.Hypot(p[0], p[1])
	phi = math.Atan2(p[1], p[0])
	if phi < 0 {
		phi += twoPi
	}
	return r, phi
}

// PolarFrame returns the local frame (r̂, φ̂) at azimuth phi.
func PolarFrame(phi float64) (rhat, phiHat vec2d.T) {
	s, c := math.Sincos(phi)
	return vec2d.T{c, s}, vec2d.T{-s, c}
}

// Linspace returns n evenly spaced samples over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	s := floats.Span(make([]float64, n), lo, hi)
	s[n-1] = hi
	return s
}

// CosineSpaced returns n polar angles arccos(τ) for τ evenly spaced from 1
// to -1. The samples are ascending over [0, π] and uniform in cosθ, so each
// band covers the same solid angle.
func CosineSpaced(n int) []float64 {
	tau := Linspace(1, -1, n)
	for i := range tau {
		tau[i] = safeAcos(tau[i])
	}
	return tau
}
