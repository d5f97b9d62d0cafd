package sphrot

import (
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

// Simps2D integrates f[i][j] = f(x[i], y[j]) with the composite Simpson
// rule along y, then along x.
func Simps2D(x, y []float64, f mat.Matrix) (float64, error) {
	if len(x) < 3 || len(y) < 3 {
		return 0, ErrTooFewSamples
	}
	if r, c := f.Dims(); r != len(x) || c != len(y) {
		return 0, ErrShapeMismatch
	}

	row := make([]float64, len(y))
	inner := make([]float64, len(x))
	for i := range x {
		mat.Row(row, i, f)
		inner[i] = integrate.Simpsons(y, row)
	}
	return integrate.Simpsons(x, inner), nil
}

// Simps3D integrates f, flattened row-major over (x, y, z), along z, then y,
// then x.
func Simps3D(x, y, z []float64, f []float64) (float64, error) {
	if len(x) < 3 || len(y) < 3 || len(z) < 3 {
		return 0, ErrTooFewSamples
	}
	if len(f) != len(x)*len(y)*len(z) {
		return 0, ErrShapeMismatch
	}

	nz := len(z)
	plane := mat.NewDense(len(x), len(y), nil)
	for i := range x {
		for j := range y {
			off := (i*len(y) + j) * nz
			plane.Set(i, j, integrate.Simpsons(z, f[off:off+nz]))
		}
	}
	return Simps2D(x, y, plane)
}

// Patch is an angular region of the sphere. When From and To are both set
// the integrand is first rotated so that From ends up along To.
type Patch struct {
	ThetaMin, ThetaMax float64
	PhiMin, PhiMax     float64
	From, To           *vec3d.T
}

func FullSphere() Patch {
	return Patch{ThetaMax: math.Pi, PhiMax: twoPi}
}

// SphereIntegrate integrates f(θ, φ)·sinθ over the patch using n samples per
// axis. The rotation, when requested, is resampled on an n×n grid covering
// the whole sphere.
func SphereIntegrate(f ScalarField, n int, patch Patch) (float64, error) {
	return defaultRotator.SphereIntegrate(f, n, patch)
}

func (fr *FieldRotator) SphereIntegrate(f ScalarField, n int, patch Patch) (float64, error) {
	if n < 3 {
		return 0, ErrTooFewSamples
	}
	if !(patch.ThetaMax > patch.ThetaMin) || !(patch.PhiMax > patch.PhiMin) {
		return 0, ErrNotIncreasing
	}

	field := f
	if patch.From != nil && patch.To != nil {
		rotated, err := fr.RotateDiscreteData(f, NewAngularGrid(n, n), *patch.From, *patch.To)
		if err != nil {
			return 0, err
		}
		field = rotated
	}

	grid := AngularGrid{
		Theta: Linspace(patch.ThetaMin, patch.ThetaMax, n),
		Phi:   Linspace(patch.PhiMin, patch.PhiMax, n),
	}
	samples := grid.Sample(field)
	for i, theta := range grid.Theta {
		row := samples.RawRowView(i)
		st := math.Sin(theta)
		for j := range row {
			row[j] *= st
		}
	}
	return Simps2D(grid.Theta, grid.Phi, samples)
}
