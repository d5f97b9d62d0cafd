package sphrot

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

func toR3(v vec3d.T) r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// AxisAngle builds the rotation by angle radians about axis using
// Rodrigues' formula:
//
//	R = I·cosθ + (1−cosθ)·u⊗u + sinθ·[u]×
//
// The axis does not need to be normalised but must not be the zero vector.
func AxisAngle(axis vec3d.T, angle float64) (*r3.Mat, error) {
	n := axis.Length()
	if n == 0 || math.IsNaN(n) {
		return nil, ErrZeroAxis
	}
	u := r3.Vec{X: axis[0] / n, Y: axis[1] / n, Z: axis[2] / n}

	s, c := math.Sincos(angle)

	var outer, skew r3.Mat
	outer.Outer(1-c, u, u)
	skew.Skew(u)
	skew.Scale(s, &skew)

	rot := r3.NewMat(nil)
	rot.Scale(c, r3.Eye())
	rot.Add(rot, &outer)
	rot.Add(rot, &skew)
	return rot, nil
}

// RotateTo returns the minimal rotation carrying the direction of from onto
// the direction of to. Parallel inputs give the identity; anti-parallel
// inputs give a half turn about an axis perpendicular to from.
func RotateTo(from, to vec3d.T) (*r3.Mat, error) {
	rot, _, err := rotateTo(from, to)
	return rot, err
}

type degeneracy int

const (
	notDegenerate degeneracy = iota
	parallel
	antiParallel
)

func rotateTo(from, to vec3d.T) (*r3.Mat, degeneracy, error) {
	nf, nt := from.Length(), to.Length()
	if nf == 0 || nt == 0 {
		return nil, notDegenerate, ErrZeroVector
	}
	f := vec3d.T{from[0] / nf, from[1] / nf, from[2] / nf}
	t := vec3d.T{to[0] / nt, to[1] / nt, to[2] / nt}

	cos := clamp(vec3d.Dot(&f, &t), -1, 1)
	axis := vec3d.Cross(&f, &t)

	if axis.Length() < parallelTolerance {
		if cos > 0 {
			return r3.Eye(), parallel, nil
		}
		rot, err := AxisAngle(perpendicular(f), math.Pi)
		return rot, antiParallel, err
	}

	rot, err := AxisAngle(axis, math.Acos(cos))
	return rot, notDegenerate, err
}

// perpendicular returns a unit vector orthogonal to the unit vector v,
// built against the Cartesian axis v is least aligned with.
func perpendicular(v vec3d.T) vec3d.T {
	ref := vec3d.T{1, 0, 0}
	if math.Abs(v[1]) < math.Abs(v[0]) && math.Abs(v[1]) <= math.Abs(v[2]) {
		ref = vec3d.T{0, 1, 0}
	} else if math.Abs(v[2]) < math.Abs(v[0]) && math.Abs(v[2]) < math.Abs(v[1]) {
		ref = vec3d.T{0, 0, 1}
	}
	p := vec3d.Cross(&v, &ref)
	return p.Normalized()
}

// IsRotation reports whether m is orthonormal with determinant one, to
// within tol.
func IsRotation(m *r3.Mat, tol float64) bool {
	var mmt r3.Mat
	mmt.Mul(m, m.T())
	eye := r3.Eye()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(mmt.At(i, j)-eye.At(i, j)) > tol {
				return false
			}
		}
	}
	return math.Abs(m.Det()-1) <= tol
}

// Transpose returns a new matrix holding mᵀ, which is the inverse rotation.
func Transpose(m *r3.Mat) *r3.Mat {
	t := r3.NewMat(nil)
	t.CloneFrom(m.T())
	return t
}
