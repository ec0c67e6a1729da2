package lissajous_test

import (
	"fmt"

	"honnef.co/go/lissajous"
	"honnef.co/go/lissajous/curve"
)

func ExampleSampler_Sample() {
	s := lissajous.Sampler{Canvas: curve.Sz(200, 200)}
	p := lissajous.Params{AmplitudeX: 100, AmplitudeY: 100, FrequencyX: 1, FrequencyY: 1, Detail: 2}
	for pair := range s.Sample(p, 0) {
		fmt.Printf("(%.3f, %.3f) -> (%.3f, %.3f)\n", pair.Point.X, pair.Point.Y, pair.Next.X, pair.Next.Y)
	}
	// Output:
	// (100.000, 100.000) -> (101.745, 101.745)
	// (101.745, 101.745) -> (103.490, 103.490)
}

func ExampleProject() {
	vp, err := lissajous.Project(lissajous.WorkSize, curve.Sz(960, 720))
	if err != nil {
		panic(err)
	}
	off := vp.Offset()
	fmt.Printf("ratio %g, offset (%g, %g)\n", vp.Ratio, off.X, off.Y)
	fmt.Println(vp.Content())

	_, err = lissajous.Project(lissajous.WorkSize, curve.Sz(0, 720))
	fmt.Println(err)
	// Output:
	// ratio 0.5, offset (0, 90)
	// {0 90 960 630}
	// lissajous: degenerate viewport: output size 0×720
}
