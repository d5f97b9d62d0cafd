package sphrot

import (
	"math"
	"sort"
)

type Method string

const (
	Linear  Method = "linear"
	Nearest Method = "nearest"
)

// Interpolator evaluates sampled data at arbitrary coordinates, one per
// grid axis.
type Interpolator interface {
	At(coords ...float64) float64
}

func Lerp(value1, value2, amount float64) float64 { return value1 + (value2-value1)*amount }

type InterpOptions struct {
	Method Method
	// FillValue is returned for points outside the sampled domain. Nil
	// means NaN.
	FillValue *float64
	// Extrapolate evaluates out-of-domain points from the nearest edge
	// cell instead of returning the fill value.
	Extrapolate bool
}

// RegularGridInterpolator interpolates values sampled on a tensor product
// grid. Values are stored row-major: the last axis varies fastest.
type RegularGridInterpolator struct {
	axes        [][]float64
	values      []float64
	strides     []int
	method      Method
	fill        float64
	extrapolate bool
}

var _ Interpolator = &RegularGridInterpolator{}

func NewRegularGridInterpolator(axes [][]float64, values []float64, opts InterpOptions) (*RegularGridInterpolator, error) {
	method := opts.Method
	switch method {
	case "":
		method = Linear
	case Linear, Nearest:
	default:
		return nil, ErrBadMethod
	}

	g := &RegularGridInterpolator{
		axes:        make([][]float64, len(axes)),
		strides:     make([]int, len(axes)),
		method:      method,
		fill:        math.NaN(),
		extrapolate: opts.Extrapolate,
	}
	if opts.FillValue != nil {
		g.fill = *opts.FillValue
	}

	size := 1
	for k := len(axes) - 1; k >= 0; k-- {
		if err := checkAxis(axes[k], 2); err != nil {
			return nil, err
		}
		g.axes[k] = append([]float64(nil), axes[k]...)
		g.strides[k] = size
		size *= len(axes[k])
	}
	if len(axes) == 0 || size != len(values) {
		return nil, ErrShapeMismatch
	}
	g.values = append([]float64(nil), values...)
	return g, nil
}

func checkAxis(ax []float64, min int) error {
	if len(ax) < min {
		return ErrGridTooSmall
	}
	for i := 1; i < len(ax); i++ {
		if !(ax[i] > ax[i-1]) {
			return ErrNotIncreasing
		}
	}
	return nil
}

func (g *RegularGridInterpolator) Dims() int {
	return len(g.axes)
}

// locate returns the lower index of the cell bracketing x, clamped to the
// first or last cell.
func locate(ax []float64, x float64) int {
	i := sort.SearchFloat64s(ax, x) - 1
	if i < 0 {
		return 0
	}
	if i > len(ax)-2 {
		return len(ax) - 2
	}
	return i
}

// At panics if the number of coordinates differs from the grid dimension.
func (g *RegularGridInterpolator) At(coords ...float64) float64 {
	d := len(g.axes)
	if len(coords) != d {
		panic(ErrShapeMismatch)
	}

	var idxBuf [4]int
	var tBuf [4]float64
	idx, t := idxBuf[:0], tBuf[:0]
	if d > len(idxBuf) {
		idx, t = make([]int, 0, d), make([]float64, 0, d)
	}

	for k, x := range coords {
		ax := g.axes[k]
		if math.IsNaN(x) {
			return math.NaN()
		}
		if !g.extrapolate && (x < ax[0] || x > ax[len(ax)-1]) {
			return g.fill
		}
		i := locate(ax, x)
		idx = append(idx, i)
		t = append(t, (x-ax[i])/(ax[i+1]-ax[i]))
	}

	if g.method == Nearest {
		off := 0
		for k := range idx {
			i := idx[k]
			if t[k] > 0.5 {
				i++
			}
			off += i * g.strides[k]
		}
		return g.values[off]
	}

	if d == 1 {
		return Lerp(g.values[idx[0]], g.values[idx[0]+1], t[0])
	}

	var sum float64
	for corner := 0; corner < 1<<d; corner++ {
		w, off := 1.0, 0
		for k := 0; k < d; k++ {
			if corner&(1<<k) != 0 {
				w *= t[k]
				off += (idx[k] + 1) * g.strides[k]
			} else {
				w *= 1 - t[k]
				off += idx[k] * g.strides[k]
			}
		}
		if w == 0 {
			continue
		}
		sum += w * g.values[off]
	}
	return sum
}
