package sphrot

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

// PlaneRotation is a rigid rotation of the xy plane by Angle radians,
// counter-clockwise.
type PlaneRotation struct {
	Angle float64
}

func (r *PlaneRotation) Add(angle float64) {
	r.Angle += angle
}

func (r PlaneRotation) Inverse() PlaneRotation {
	return PlaneRotation{-r.Angle}
}

// Matrix returns the rotation in row-major order, m[row][col].
func (r PlaneRotation) Matrix() (m [2][2]float64) {
	s, c := math.Sincos(r.Angle)

	m[0][0] = c
	m[0][1] = -s
	m[1][0] = s
	m[1][1] = c

	return m
}

func (r PlaneRotation) Rotate(v vec2d.T) vec2d.T {
	m := r.Matrix()
	return vec2d.T{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// RotateComponents rotates the pair (u, v) in place.
func (r PlaneRotation) RotateComponents(u, v []float64) {
	m := r.Matrix()
	for i := range u {
		x, y := u[i], v[i]
		u[i] = m[0][0]*x + m[0][1]*y
		v[i] = m[1][0]*x + m[1][1]*y
	}
}
