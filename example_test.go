package progresspath_test

import (
	"fmt"

	"honnef.co/go/progresspath"
)

func ExampleDashPatternFor() {
	g, err := progresspath.ParseSVGPath("M0,0 L30,40 L30,0")
	if err != nil {
		panic(err)
	}
	l, err := progresspath.Length(g)
	if err != nil {
		panic(err)
	}
	d, err := progresspath.DashPatternFor(l, 2, 25)
	if err != nil {
		panic(err)
	}
	fmt.Println("length:", l)
	fmt.Println("dash array:", d.Array())
	fmt.Printf("stroke-dasharray=%q\n", d.SVGDashArray(2))
	// Output:
	// length: 90
	// dash array: [11.25 45]
	// stroke-dasharray="22.5 90"
}

func ExampleProgressPath() {
	var g progresspath.Geometry
	g.MoveTo(progresspath.Pt(0, 0))
	g.LineTo(progresspath.Pt(100, 0))

	p := progresspath.NewProgressPath(progresspath.EstimatorOpts{})
	if err := p.SetGeometry(g); err != nil {
		panic(err)
	}
	for _, progress := range []float64{0, 50, 100} {
		p.SetProgress(progress)
		fmt.Println(p.Pattern())
	}
	// Output:
	// [0 100]
	// [50 100]
	// [100 100]
}
