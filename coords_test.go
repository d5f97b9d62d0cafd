package sphrot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphericalRoundTrip(t *testing.T) {
	a := assert.New(t)

	for _, r := range []float64{0.5, 1, 3} {
		for _, theta := range []float64{0.1, 1, math.Pi / 2, 3} {
			for _, phi := range []float64{0, 0.5, math.Pi, 4, 6.2} {
				rr, tt, pp := CartToSph(SphToCart(r, theta, phi))
				a.InDelta(r, rr, 1e-12)
				a.InDelta(theta, tt, 1e-12)
				a.InDelta(phi, pp, 1e-12)
			}
		}
	}
}

func TestCartToSphDegenerate(t *testing.T) {
	a := assert.New(t)

	r, theta, phi := CartToSph(r3.Vec{})
	a.Equal(0.0, r)
	a.InDelta(math.Pi/2, theta, 1e-15)
	a.Equal(0.0, phi)

	_, theta, _ = CartToSph(r3.Vec{Z: -2})
	a.InDelta(math.Pi, theta, 1e-15)

	_, _, phi = CartToSph(r3.Vec{X: 1, Y: -1e-9})
	a.True(phi >= 0 && phi < 2*math.Pi)
}

func TestSphBasisIsOrthonormalAndRightHanded(t *testing.T) {
	a := assert.New(t)

	for _, theta := range []float64{0, 0.4, 2} {
		for _, phi := range []float64{0, 1.3, 5} {
			rhat, thetaHat, phiHat := SphBasis(theta, phi)
			a.InDelta(1, r3.Norm(rhat), 1e-15)
			a.InDelta(1, r3.Norm(thetaHat), 1e-15)
			a.InDelta(1, r3.Norm(phiHat), 1e-15)
			a.InDelta(0, r3.Dot(rhat, thetaHat), 1e-15)
			a.InDelta(0, r3.Dot(rhat, phiHat), 1e-15)
			vecNear(a, phiHat, r3.Cross(rhat, thetaHat), 1e-15)
		}
	}
}

func TestPolarRoundTrip(t *testing.T) {
	a := assert.New(t)

	r, phi := CartToPolar(PolarToCart(2, 5.5))
	a.InDelta(2, r, 1e-15)
	a.InDelta(5.5, phi, 1e-14)

	rhat, phiHat := PolarFrame(0.3)
	a.InDelta(0, rhat[0]*phiHat[0]+rhat[1]*phiHat[1], 1e-15)
}

func TestLinspace(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-15)

	if diff := cmp.Diff([]float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5), opt); diff != "" {
		t.Errorf("Linspace mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{3}, Linspace(3, 4, 1)); diff != "" {
		t.Errorf("Linspace(n=1) mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, Linspace(0, 1, 0))

	want := []float64{0, math.Pi / 3, math.Pi / 2, 2 * math.Pi / 3, math.Pi}
	if diff := cmp.Diff(want, CosineSpaced(5), opt); diff != "" {
		t.Errorf("CosineSpaced mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapPhi(t *testing.T) {
	a := assert.New(t)

	a.Equal(2*math.Pi, wrapPhi(2*math.Pi))
	a.InDelta(2*math.Pi-0.5, wrapPhi(-0.5), 1e-15)
	a.InDelta(0.5, wrapPhi(2*math.Pi+0.5), 1e-15)
}
