package progresspath

import (
	"math"
)

// ArcSegment is an elliptical arc in endpoint parameterization, as used by
// SVG's A command. The arc starts at the current point.
//
// Arc segments can be stored, transformed and serialized, but their length
// cannot be estimated; see [Estimator.Estimate].
type ArcSegment struct {
	End   Point
	Radii Vec2
	// Rotation of the ellipse's x axis, in radians.
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

// Transform maps the arc through aff. The ellipse's radii and rotation are
// derived from the singular value decomposition of aff's linear part, and
// the sweep direction flips for transforms that mirror.
func (a ArcSegment) Transform(aff Affine) ArcSegment {
	ellipse := Rotate(a.XRotation).Mul(Scale(a.Radii.X, a.Radii.Y))
	radii, th := aff.Mul(ellipse).svd()
	out := ArcSegment{
		End:       a.End.Transform(aff),
		Radii:     radii,
		XRotation: th,
		LargeArc:  a.LargeArc,
		Sweep:     a.Sweep,
	}
	if aff.Determinant() < 0 {
		out.Sweep = !out.Sweep
	}
	return out
}

func (a ArcSegment) IsNaN() bool {
	return a.End.IsNaN() || math.IsNaN(a.Radii.X) || math.IsNaN(a.Radii.Y) || math.IsNaN(a.XRotation)
}

func (a ArcSegment) IsInf() bool {
	return a.End.IsInf() || math.IsInf(a.Radii.X, 0) || math.IsInf(a.Radii.Y, 0) || math.IsInf(a.XRotation, 0)
}
