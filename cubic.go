package progresspath

// CubicSamples is the number of points at which [CubicBez.SampledArclen]
// evaluates a curve. The parameter advances in fixed steps of
// 1/CubicSamples, independent of the curve's size or curvature.
const CubicSamples = 1000

type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at t, using the Bernstein form
// (1-t)³P0 + 3t(1-t)²P1 + 3t²(1-t)P2 + t³P3.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// SampledArclen approximates the arc length of the curve by evaluating it at
// t = 1/CubicSamples, 2/CubicSamples, …, 1 and summing the distances between
// consecutive points, starting at P0.
//
// The result never exceeds the true arc length. Its error depends only on
// the sampling resolution, not on an accuracy parameter.
func (c CubicBez) SampledArclen() float64 {
	var l float64
	last := c.P0
	for i := 1; i <= CubicSamples; i++ {
		t := float64(i) / CubicSamples
		pt := c.Eval(t)
		l += last.Distance(pt)
		last = pt
	}
	return l
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}
