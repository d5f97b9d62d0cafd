package sphrot

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// AngularGrid is the tensor product of polar angles Theta (within [0, π])
// and azimuths Phi (within [0, 2π]). Axis 0 is theta, axis 1 is phi.
type AngularGrid struct {
	Theta []float64
	Phi   []float64
}

func NewAngularGrid(nTheta, nPhi int) AngularGrid {
	return AngularGrid{Theta: Linspace(0, math.Pi, nTheta), Phi: Linspace(0, twoPi, nPhi)}
}

func (g AngularGrid) Validate() error {
	if err := checkAxis(g.Theta, 2); err != nil {
		return err
	}
	return checkAxis(g.Phi, 2)
}

func (g AngularGrid) Shape() (int, int) {
	return len(g.Theta), len(g.Phi)
}

// Sample evaluates f at every grid node; row i is Theta[i], column j is Phi[j].
func (g AngularGrid) Sample(f ScalarField) *mat.Dense {
	nt, np := g.Shape()
	m := mat.NewDense(nt, np, nil)
	for i, th := range g.Theta {
		for j, ph := range g.Phi {
			m.Set(i, j, f.Evaluate(th, ph))
		}
	}
	return m
}

// PolarGrid is the tensor product of radii R and azimuths Phi. Axis 0 is r,
// axis 1 is phi. R may hold a single sample.
type PolarGrid struct {
	R   []float64
	Phi []float64
}

func (g PolarGrid) Validate() error {
	if err := checkRadial(g.R); err != nil {
		return err
	}
	return checkAxis(g.Phi, 2)
}

func (g PolarGrid) Len() int {
	return len(g.R) * len(g.Phi)
}

func (g PolarGrid) Index(i, j int) int {
	return i*len(g.Phi) + j
}

// SphericalGrid is the tensor product of radii R, polar angles Theta and
// azimuths Phi, in that axis order. R may hold a single sample.
type SphericalGrid struct {
	R     []float64
	Theta []float64
	Phi   []float64
}

func (g SphericalGrid) Validate() error {
	if err := checkRadial(g.R); err != nil {
		return err
	}
	if err := checkAxis(g.Theta, 2); err != nil {
		return err
	}
	return checkAxis(g.Phi, 2)
}

func (g SphericalGrid) Len() int {
	return len(g.R) * len(g.Theta) * len(g.Phi)
}

func (g SphericalGrid) Index(i, j, k int) int {
	return (i*len(g.Theta)+j)*len(g.Phi) + k
}

func (g SphericalGrid) Angular() AngularGrid {
	return AngularGrid{Theta: g.Theta, Phi: g.Phi}
}

func checkRadial(r []float64) error {
	if err := checkAxis(r, 1); err != nil {
		return err
	}
	if r[0] < 0 {
		return ErrNegativeR
	}
	return nil
}
