package main

import (
	"fmt"
	"io"
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/flywave/go-sphrot"
)

type matrixFlags struct {
	axis    []float64
	angle   float64
	degrees bool
	from    []float64
	to      []float64
}

func newMatrixCmd() *cobra.Command {
	var flags matrixFlags
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print a rotation matrix",
		Long: `Print the rotation matrix for --axis and --angle, or the minimal rotation
carrying --from onto --to, followed by its determinant and rotation angle.`,
		Example: `  sphrot matrix --axis 0,0,1 --angle 90 --degrees
  sphrot matrix --from 0,0,1 --to 1,0,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rot, err := flags.build()
			if err != nil {
				return err
			}
			logger.Debug("built rotation", zap.Float64("det", rot.Det()))
			return printMatrix(cmd.OutOrStdout(), rot)
		},
	}
	cmd.Flags().Float64SliceVar(&flags.axis, "axis", nil, "Rotation axis as x,y,z")
	cmd.Flags().Float64Var(&flags.angle, "angle", 0, "Rotation angle, radians unless --degrees")
	cmd.Flags().BoolVar(&flags.degrees, "degrees", false, "Read --angle in degrees")
	cmd.Flags().Float64SliceVar(&flags.from, "from", nil, "Initial orientation as x,y,z")
	cmd.Flags().Float64SliceVar(&flags.to, "to", nil, "Final orientation as x,y,z")
	cmd.MarkFlagsMutuallyExclusive("axis", "from")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

func (f matrixFlags) build() (*r3.Mat, error) {
	switch {
	case f.axis != nil:
		axis, err := toVec(f.axis)
		if err != nil {
			return nil, fmt.Errorf("--axis: %w", err)
		}
		angle := f.angle
		if f.degrees {
			angle = sphrot.DegToRad(angle)
		}
		return sphrot.AxisAngle(axis, angle)
	case f.from != nil:
		from, err := toVec(f.from)
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		to, err := toVec(f.to)
		if err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
		return sphrot.RotateTo(from, to)
	}
	return nil, fmt.Errorf("either --axis or --from and --to is required")
}

func toVec(v []float64) (vec3d.T, error) {
	if len(v) != 3 {
		return vec3d.T{}, fmt.Errorf("need 3 components, got %d", len(v))
	}
	return vec3d.T{v[0], v[1], v[2]}, nil
}

// rotationAngle recovers the turn angle from the trace, tr = 1 + 2cosθ.
func rotationAngle(m *r3.Mat) float64 {
	c := (m.At(0, 0) + m.At(1, 1) + m.At(2, 2) - 1) / 2
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

func printMatrix(w io.Writer, m *r3.Mat) error {
	for i := 0; i < 3; i++ {
		if _, err := fmt.Fprintf(w, "% .6f % .6f % .6f\n", m.At(i, 0), m.At(i, 1), m.At(i, 2)); err != nil {
			return err
		}
	}
	angle := rotationAngle(m)
	_, err := fmt.Fprintf(w, "det   %.6f\nangle %.6f rad (%.3f deg)\n", m.Det(), angle, sphrot.RadToDeg(angle))
	return err
}
