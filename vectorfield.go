package sphrot

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Basis names the frame 2-D vector components are expressed in.
type Basis int

const (
	// PolarBasis components are (r̂, φ̂) at each grid point.
	PolarBasis Basis = iota
	// CartesianBasis components are (x̂, ŷ) everywhere.
	CartesianBasis
)

func (b Basis) String() string {
	switch b {
	case PolarBasis:
		return "polar"
	case CartesianBasis:
		return "cartesian"
	}
	return "unknown"
}

// VectorField2D holds components on a PolarGrid, flattened with
// PolarGrid.Index. Color is optional co-located scalar data.
type VectorField2D struct {
	U     []float64
	V     []float64
	Color []float64
}

func (f *VectorField2D) check(n int) error {
	if len(f.U) != n || len(f.V) != n {
		return ErrShapeMismatch
	}
	if f.Color != nil && len(f.Color) != n {
		return ErrShapeMismatch
	}
	return nil
}

// VectorField3D holds (r̂, θ̂, φ̂) components on a SphericalGrid, flattened
// with SphericalGrid.Index. Color is optional co-located scalar data.
type VectorField3D struct {
	U     []float64
	V     []float64
	W     []float64
	Color []float64
}

func (f *VectorField3D) check(n int) error {
	if len(f.U) != n || len(f.V) != n || len(f.W) != n {
		return ErrShapeMismatch
	}
	if f.Color != nil && len(f.Color) != n {
		return ErrShapeMismatch
	}
	return nil
}

// SamplePolar evaluates a Cartesian plane field at every node of grid and
// stores it in the requested basis.
func SamplePolar(grid PolarGrid, basis Basis, field func(p vec2d.T) vec2d.T) *VectorField2D {
	n := grid.Len()
	out := &VectorField2D{U: make([]float64, n), V: make([]float64, n)}
	for i, r := range grid.R {
		for j, phi := range grid.Phi {
			v := field(PolarToCart(r, phi))
			idx := grid.Index(i, j)
			if basis == CartesianBasis {
				out.U[idx], out.V[idx] = v[0], v[1]
				continue
			}
			rhat, phiHat := PolarFrame(phi)
			out.U[idx] = vec2d.Dot(&v, &rhat)
			out.V[idx] = vec2d.Dot(&v, &phiHat)
		}
	}
	return out
}

// SampleSpherical evaluates a Cartesian field at every node of grid and
// projects it onto the local (r̂, θ̂, φ̂) frame.
func SampleSpherical(grid SphericalGrid, field func(p r3.Vec) r3.Vec) *VectorField3D {
	n := grid.Len()
	out := &VectorField3D{U: make([]float64, n), V: make([]float64, n), W: make([]float64, n)}
	for i, r := range grid.R {
		for j, theta := range grid.Theta {
			for k, phi := range grid.Phi {
				v := field(SphToCart(r, theta, phi))
				rhat, thetaHat, phiHat := SphBasis(theta, phi)
				idx := grid.Index(i, j, k)
				out.U[idx] = r3.Dot(v, rhat)
				out.V[idx] = r3.Dot(v, thetaHat)
				out.W[idx] = r3.Dot(v, phiHat)
			}
		}
	}
	return out
}

// Cartesian lifts the components at node (i, j, k) back into a Cartesian
// vector.
func (f *VectorField3D) Cartesian(grid SphericalGrid, i, j, k int) r3.Vec {
	idx := grid.Index(i, j, k)
	rhat, thetaHat, phiHat := SphBasis(grid.Theta[j], grid.Phi[k])
	return liftSpherical(f.U[idx], f.V[idx], f.W[idx], rhat, thetaHat, phiHat)
}

func liftSpherical(u, v, w float64, rhat, thetaHat, phiHat r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(u, rhat), r3.Scale(v, thetaHat)), r3.Scale(w, phiHat))
}
