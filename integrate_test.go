package sphrot

import (
	"math"
	"testing"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSimps2D(t *testing.T) {
	a := assert.New(t)

	x := Linspace(0, 1, 11)
	y := Linspace(0, 2, 21)
	f := mat.NewDense(len(x), len(y), nil)
	for i, xv := range x {
		for j, yv := range y {
			f.Set(i, j, xv*xv*yv)
		}
	}
	got, err := Simps2D(x, y, f)
	a.NoError(err)
	a.InDelta(2.0/3, got, 1e-12)

	_, err = Simps2D(x[:2], y, f)
	a.ErrorIs(err, ErrTooFewSamples)
	_, err = Simps2D(x[:5], y, f)
	a.ErrorIs(err, ErrShapeMismatch)
}

func TestSimps3D(t *testing.T) {
	a := assert.New(t)

	x, y, z := Linspace(0, 1, 5), Linspace(0, 1, 6), Linspace(0, 2, 7)
	var f []float64
	for _, xv := range x {
		for _, yv := range y {
			for _, zv := range z {
				f = append(f, xv+yv+zv)
			}
		}
	}
	got, err := Simps3D(x, y, z, f)
	a.NoError(err)
	a.InDelta(4, got, 1e-12)

	_, err = Simps3D(x, y, z, f[1:])
	a.ErrorIs(err, ErrShapeMismatch)
}

func TestSphereIntegrateArea(t *testing.T) {
	a := assert.New(t)

	one := ScalarFunc(func(theta, phi float64) float64 { return 1 })
	got, err := SphereIntegrate(one, 101, FullSphere())
	a.NoError(err)
	a.InDelta(4*math.Pi, got, 1e-6)

	hemi := FullSphere()
	hemi.ThetaMax = math.Pi / 2
	got, err = SphereIntegrate(one, 101, hemi)
	a.NoError(err)
	a.InDelta(2*math.Pi, got, 1e-6)
}

func TestSphereIntegrateWithRotation(t *testing.T) {
	// cosθ over the upper hemisphere is π; after turning the pole onto -z
	// the same patch sees -cosθ.
	f := ScalarFunc(func(theta, phi float64) float64 { return math.Cos(theta) })
	from, to := vec3d.T{0, 0, 1}, vec3d.T{0, 0, -1}
	patch := Patch{ThetaMax: math.Pi / 2, PhiMax: 2 * math.Pi, From: &from, To: &to}

	got, err := SphereIntegrate(f, 121, patch)
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi, got, 1e-2)
}

func TestSphereIntegrateErrors(t *testing.T) {
	a := assert.New(t)

	one := ScalarFunc(func(theta, phi float64) float64 { return 1 })
	_, err := SphereIntegrate(one, 2, FullSphere())
	a.ErrorIs(err, ErrTooFewSamples)
	_, err = SphereIntegrate(one, 11, Patch{})
	a.ErrorIs(err, ErrNotIncreasing)
}
