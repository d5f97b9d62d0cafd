package sphrot

import (
	"gonum.org/v1/gonum/mat"
)

// ScalarField is a real function on the sphere, typically a radius-like
// magnitude R(θ, φ) for a source at the origin.
type ScalarField interface {
	Evaluate(theta, phi float64) float64
}

type ScalarFunc func(theta, phi float64) float64

func (f ScalarFunc) Evaluate(theta, phi float64) float64 {
	return f(theta, phi)
}

// GridField is a ScalarField backed by samples on an AngularGrid. It owns
// copies of its grid and samples and is safe for concurrent use.
type GridField struct {
	grid   AngularGrid
	values *mat.Dense
	interp *RegularGridInterpolator
}

var _ ScalarField = &GridField{}

// NewGridField wraps values, laid out as Sample lays them out, in an
// interpolator over grid.
func NewGridField(grid AngularGrid, values mat.Matrix, opts InterpOptions) (*GridField, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	nt, np := grid.Shape()
	if r, c := values.Dims(); r != nt || c != np {
		return nil, ErrShapeMismatch
	}

	dense := mat.DenseCopyOf(values)
	interp, err := NewRegularGridInterpolator([][]float64{grid.Theta, grid.Phi}, dense.RawMatrix().Data, opts)
	if err != nil {
		return nil, err
	}

	return &GridField{
		grid: AngularGrid{
			Theta: append([]float64(nil), grid.Theta...),
			Phi:   append([]float64(nil), grid.Phi...),
		},
		values: dense,
		interp: interp,
	}, nil
}

// Evaluate wraps azimuths outside [0, 2π] before interpolating.
func (f *GridField) Evaluate(theta, phi float64) float64 {
	return f.interp.At(theta, wrapPhi(phi))
}

func (f *GridField) Grid() AngularGrid {
	return f.grid
}

// Values returns a copy of the samples.
func (f *GridField) Values() *mat.Dense {
	return mat.DenseCopyOf(f.values)
}
