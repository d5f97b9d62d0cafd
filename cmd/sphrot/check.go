package main

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flywave/go-sphrot"
)

func newCheckCmd() *cobra.Command {
	var (
		configPath string
		samples    int
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Rotate sinθ+1 and compare cap integrals before and after",
		Long: `Sample sinθ+1 on a cosine spaced grid, rotate it from the configured
orientation onto the target one and integrate both fields over each polar
cap. The full sphere should keep (4+π)π and the upper hemisphere half of it;
for a small cap around the pole the rotated field holds twice the original.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("samples") {
				cfg.Samples = samples
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			results, err := runCheck(cfg, logger)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "Samples per angular axis, overrides the config")
	return cmd
}

type capResult struct {
	Fraction float64
	Initial  float64
	Rotated  float64
	Expected float64
}

func (r capResult) Ratio() float64 {
	return r.Rotated / r.Initial
}

func sinPlusOne(theta, phi float64) float64 {
	return math.Sin(theta) + 1
}

// capIntegral is the exact integral of sinθ+1 over the cap θ ≤ a.
func capIntegral(a float64) float64 {
	return 2 * math.Pi * (a/2 - math.Sin(2*a)/4 + 1 - math.Cos(a))
}

func runCheck(cfg Config, logger *zap.Logger) ([]capResult, error) {
	from, err := toVec(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := toVec(cfg.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	method := sphrot.Method(cfg.Method)
	fr := sphrot.NewFieldRotator(sphrot.Options{Method: method, Extrapolate: true, Logger: logger})

	grid := sphrot.AngularGrid{
		Theta: sphrot.CosineSpaced(cfg.Samples),
		Phi:   sphrot.Linspace(0, 2*math.Pi, cfg.Samples),
	}
	initial, err := sphrot.NewGridField(grid, grid.Sample(sphrot.ScalarFunc(sinPlusOne)),
		sphrot.InterpOptions{Method: method, Extrapolate: true})
	if err != nil {
		return nil, fmt.Errorf("failed to sample field: %w", err)
	}
	rotated, err := fr.RotateDiscreteData(initial, grid, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate field: %w", err)
	}

	results := make([]capResult, 0, len(cfg.Caps))
	for _, frac := range cfg.Caps {
		patch := sphrot.Patch{ThetaMax: frac * math.Pi, PhiMax: 2 * math.Pi}
		y1, err := fr.SphereIntegrate(initial, cfg.Samples, patch)
		if err != nil {
			return nil, err
		}
		y2, err := fr.SphereIntegrate(rotated, cfg.Samples, patch)
		if err != nil {
			return nil, err
		}
		res := capResult{Fraction: frac, Initial: y1, Rotated: y2, Expected: capIntegral(patch.ThetaMax)}
		logger.Debug("integrated cap",
			zap.Float64("fraction", frac),
			zap.Float64("initial", y1),
			zap.Float64("rotated", y2))
		results = append(results, res)
	}
	return results, nil
}

func printResults(w io.Writer, results []capResult) error {
	if _, err := fmt.Fprintf(w, "%-8s %14s %14s %14s %8s\n", "cap", "initial", "rotated", "expected", "ratio"); err != nil {
		return err
	}
	for _, r := range results {
		_, err := fmt.Fprintf(w, "%-8.3f %14.6g %14.6g %14.6g %8.4f\n",
			r.Fraction, r.Initial, r.Rotated, r.Expected, r.Ratio())
		if err != nil {
			return err
		}
	}
	return nil
}
