package sphrot

import (
	"fmt"
	"math"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

func round3(x float64) float64 {
	return math.Round(x*1e3)/1e3 + 0
}

func ExampleRotateTo() {
	rot, _ := RotateTo(vec3d.T{0, 0, 1}, vec3d.T{1, 0, 0})
	for i := 0; i < 3; i++ {
		fmt.Println(round3(rot.At(i, 0)), round3(rot.At(i, 1)), round3(rot.At(i, 2)))
	}
	// Output:
	// 0 0 1
	// 0 1 0
	// -1 0 0
}

func ExampleSphereIntegrate() {
	f := ScalarFunc(func(theta, phi float64) float64 { return math.Sin(theta) + 1 })
	total, _ := SphereIntegrate(f, 201, FullSphere())
	fmt.Printf("%.4f\n", total)
	// Output:
	// 22.4360
}

func ExampleRotateDiscreteData() {
	f := ScalarFunc(func(theta, phi float64) float64 { return 1 + math.Cos(theta) })
	rotated, _ := RotateDiscreteData(f, NewAngularGrid(91, 181), vec3d.T{0, 0, 1}, vec3d.T{1, 0, 0})

	// The new pole sees what the old field held along +x, and the old pole
	// value shows up along -x.
	fmt.Printf("%.3f %.3f\n", rotated.Evaluate(0, 0), rotated.Evaluate(math.Pi/2, math.Pi))
	// Output:
	// 1.000 2.000
}
