package progresspath

// PolylineLength returns the summed length of the line segments connecting
// consecutive points. Fewer than two points have a length of zero.
func PolylineLength(pts []Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	return polylineLengthFrom(pts[0], pts[1:])
}

// polylineLengthFrom is PolylineLength for a polyline whose first point is
// held separately, which is how polyline segments store their points.
func polylineLengthFrom(start Point, pts []Point) float64 {
	var l float64
	last := start
	for _, pt := range pts {
		l += last.Distance(pt)
		last = pt
	}
	return l
}
