package sphrot

import (
	vec3d "github.com/flywave/go3d/float64/vec3"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

type Options struct {
	// Method is the interpolation method, Linear when empty.
	Method Method
	// FillValue is what rotated scalar fields return outside their grid.
	// Nil means NaN.
	FillValue *float64
	// Extrapolate makes rotated scalar fields extrapolate instead of
	// returning FillValue.
	Extrapolate bool
	// Basis2D is the frame of VectorField2D components.
	Basis2D Basis
	Logger  *zap.Logger
}

// FieldRotator re-expresses fields sampled on angular grids in a rotated
// frame. It holds no mutable state.
type FieldRotator struct {
	interp  InterpOptions
	basis2D Basis
	logger  *zap.Logger
}

func NewFieldRotator(opts Options) *FieldRotator {
	fr := &FieldRotator{
		interp: InterpOptions{
			Method:      opts.Method,
			FillValue:   opts.FillValue,
			Extrapolate: opts.Extrapolate,
		},
		basis2D: opts.Basis2D,
		logger:  opts.Logger,
	}
	if fr.interp.Method == "" {
		fr.interp.Method = Linear
	}
	if fr.logger == nil {
		fr.logger = zap.NewNop()
	}
	return fr
}

var defaultRotator = NewFieldRotator(Options{})

// RotateDiscreteData resamples sig on grid in a frame turned by RotateTo(from,
// to): the returned field looking along from sees what sig held along to.
func RotateDiscreteData(sig ScalarField, grid AngularGrid, from, to vec3d.T) (*GridField, error) {
	return defaultRotator.RotateDiscreteData(sig, grid, from, to)
}

func RotateVectorField2D(field *VectorField2D, grid PolarGrid, angle float64) (*VectorField2D, error) {
	return defaultRotator.RotateVectorField2D(field, grid, angle)
}

func RotateVectorField3D(field *VectorField3D, grid SphericalGrid, rot *r3.Mat) (*VectorField3D, error) {
	return defaultRotator.RotateVectorField3D(field, grid, rot)
}

func (fr *FieldRotator) RotateDiscreteData(sig ScalarField, grid AngularGrid, from, to vec3d.T) (*GridField, error) {
	rot, deg, err := rotateTo(from, to)
	if err != nil {
		return nil, err
	}
	switch deg {
	case parallel:
		fr.logger.Debug("orientation unchanged, rotating by identity",
			zap.Float64s("from", from[:]), zap.Float64s("to", to[:]))
	case antiParallel:
		fr.logger.Debug("orientations opposite, rotating by half turn",
			zap.Float64s("from", from[:]), zap.Float64s("to", to[:]))
	}
	return fr.RotateScalar(sig, grid, rot)
}

// RotateScalar pulls sig back through rot: the returned field at (θ, φ) is
// sig evaluated at the direction of rot·p(θ, φ), where p is the point at
// radius sig(θ, φ). Rotating by A and then by B equals rotating once by A·B.
func (fr *FieldRotator) RotateScalar(sig ScalarField, grid AngularGrid, rot *r3.Mat) (*GridField, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	nt, np := grid.Shape()
	values := mat.NewDense(nt, np, nil)
	for i, theta := range grid.Theta {
		for j, phi := range grid.Phi {
			r := sig.Evaluate(theta, phi)
			p := rot.MulVec(SphToCart(r, theta, phi))
			_, thetaP, phiP := CartToSph(p)
			values.Set(i, j, sig.Evaluate(thetaP, phiP))
		}
	}

	return NewGridField(grid, values, fr.interp)
}

// RotateVectorField2D rotates the field on grid by angle radians,
// counter-clockwise. With a single radius the field is treated as a ring
// and interpolated over φ alone.
func (fr *FieldRotator) RotateVectorField2D(field *VectorField2D, grid PolarGrid, angle float64) (*VectorField2D, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	n := grid.Len()
	if err := field.check(n); err != nil {
		return nil, err
	}

	u := append([]float64(nil), field.U...)
	v := append([]float64(nil), field.V...)
	if fr.basis2D == PolarBasis {
		for i := range grid.R {
			for j, phi := range grid.Phi {
				idx := grid.Index(i, j)
				rhat, phiHat := PolarFrame(phi)
				u[idx], v[idx] = u[idx]*rhat[0]+v[idx]*phiHat[0], u[idx]*rhat[1]+v[idx]*phiHat[1]
			}
		}
	}
	rot := PlaneRotation{angle}
	rot.RotateComponents(u, v)

	axes := [][]float64{grid.R, grid.Phi}
	ring := len(grid.R) == 1
	if ring {
		axes = axes[1:]
		fr.logger.Debug("single radius, interpolating over phi only")
	}
	comps := [][]float64{u, v}
	if field.Color != nil {
		comps = append(comps, field.Color)
	}
	interps, err := fr.componentInterpolators(axes, comps)
	if err != nil {
		return nil, err
	}

	out := &VectorField2D{U: make([]float64, n), V: make([]float64, n)}
	if field.Color != nil {
		out.Color = make([]float64, n)
	}

	inv := rot.Inverse()
	rMin, rMax := grid.R[0], grid.R[len(grid.R)-1]
	phiMin, phiMax := grid.Phi[0], grid.Phi[len(grid.Phi)-1]
	clipped := 0
	coords := make([]float64, len(axes))

	for i, r := range grid.R {
		for j, phi := range grid.Phi {
			rs, phis := CartToPolar(inv.Rotate(PolarToCart(r, phi)))
			rc, phic := clamp(rs, rMin, rMax), clamp(phis, phiMin, phiMax)
			if rc != rs || phic != phis {
				clipped++
			}
			if ring {
				coords[0] = phic
			} else {
				coords[0], coords[1] = rc, phic
			}

			x, y := interps[0].At(coords...), interps[1].At(coords...)
			idx := grid.Index(i, j)
			if fr.basis2D == PolarBasis {
				rhat, phiHat := PolarFrame(phi)
				out.U[idx] = x*rhat[0] + y*rhat[1]
				out.V[idx] = x*phiHat[0] + y*phiHat[1]
			} else {
				out.U[idx], out.V[idx] = x, y
			}
			if out.Color != nil {
				out.Color[idx] = interps[2].At(coords...)
			}
		}
	}

	fr.logger.Debug("rotated 2d vector field",
		zap.Float64("angle", angle),
		zap.Stringer("basis", fr.basis2D),
		zap.Int("points", n),
		zap.Int("clipped", clipped))

	return out, nil
}

// RotateVectorField3D re-expresses the field in the frame rotated by rot.
// Each output point p takes the field found at rot·p, carried back by rotᵀ,
// so the result is F'(p) = rotᵀ·F(rot·p). With a single radius the field is
// interpolated over (θ, φ) alone.
func (fr *FieldRotator) RotateVectorField3D(field *VectorField3D, grid SphericalGrid, rot *r3.Mat) (*VectorField3D, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	n := grid.Len()
	if err := field.check(n); err != nil {
		return nil, err
	}

	axes := [][]float64{grid.R, grid.Theta, grid.Phi}
	shell := len(grid.R) == 1
	if shell {
		axes = axes[1:]
		fr.logger.Debug("single radius, interpolating over theta and phi only")
	}
	comps := [][]float64{field.U, field.V, field.W}
	if field.Color != nil {
		comps = append(comps, field.Color)
	}
	interps, err := fr.componentInterpolators(axes, comps)
	if err != nil {
		return nil, err
	}

	out := &VectorField3D{U: make([]float64, n), V: make([]float64, n), W: make([]float64, n)}
	if field.Color != nil {
		out.Color = make([]float64, n)
	}

	rMin, rMax := grid.R[0], grid.R[len(grid.R)-1]
	thetaMin, thetaMax := grid.Theta[0], grid.Theta[len(grid.Theta)-1]
	phiMin, phiMax := grid.Phi[0], grid.Phi[len(grid.Phi)-1]
	clipped := 0
	coords := make([]float64, len(axes))

	for i, r := range grid.R {
		for j, theta := range grid.Theta {
			for k, phi := range grid.Phi {
				rs, thetas, phis := CartToSph(rot.MulVec(SphToCart(r, theta, phi)))
				rc := clamp(rs, rMin, rMax)
				thetac := clamp(thetas, thetaMin, thetaMax)
				phic := clamp(phis, phiMin, phiMax)
				if rc != rs || thetac != thetas || phic != phis {
					clipped++
				}
				if shell {
					coords[0], coords[1] = thetac, phic
				} else {
					coords[0], coords[1], coords[2] = rc, thetac, phic
				}

				rhat, thetaHat, phiHat := SphBasis(thetac, phic)
				src := liftSpherical(interps[0].At(coords...), interps[1].At(coords...), interps[2].At(coords...),
					rhat, thetaHat, phiHat)
				dst := rot.MulVecTrans(src)

				rhat, thetaHat, phiHat = SphBasis(theta, phi)
				idx := grid.Index(i, j, k)
				out.U[idx] = r3.Dot(dst, rhat)
				out.V[idx] = r3.Dot(dst, thetaHat)
				out.W[idx] = r3.Dot(dst, phiHat)
				if out.Color != nil {
					out.Color[idx] = interps[3].At(coords...)
				}
			}
		}
	}

	fr.logger.Debug("rotated 3d vector field",
		zap.Int("points", n),
		zap.Int("clipped", clipped))

	return out, nil
}

func (fr *FieldRotator) componentInterpolators(axes [][]float64, comps [][]float64) ([]*RegularGridInterpolator, error) {
	opts := fr.interp
	opts.Extrapolate = true
	interps := make([]*RegularGridInterpolator, len(comps))
	for c, values := range comps {
		interp, err := NewRegularGridInterpolator(axes, values, opts)
		if err != nil {
			return nil, err
		}
		interps[c] = interp
	}
	return interps, nil
}
