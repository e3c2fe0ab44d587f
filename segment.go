package progresspath

import (
	"fmt"
	"slices"
	"strings"
)

type SegmentKind int

const (
	// A straight line to P0.
	LineKind SegmentKind = iota + 1
	// A chain of straight lines through Points.
	PolylineKind
	// A cubic Bézier with control points P0 and P1, ending at P2.
	CubicKind
	// An elliptical arc, described by Arc.
	ArcKind
)

func (k SegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case PolylineKind:
		return "Polyline"
	case CubicKind:
		return "Cubic"
	case ArcKind:
		return "Arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one drawing command of a [Figure]. It acts as a tagged union of
// lines, polylines, cubic Béziers and elliptical arcs; Kind determines which
// of the other fields are meaningful. A segment doesn't store its start
// point: it begins where the previous segment of the figure ended.
//
// Use [LineTo], [PolylineTo], [CubicTo] and [ArcTo] to construct segments.
type Segment struct {
	Kind SegmentKind
	// Points used by LineKind and CubicKind.
	P0, P1, P2 Point
	// Points used by PolylineKind. The last point is the segment's end.
	Points []Point
	// Used by ArcKind.
	Arc ArcSegment
}

func LineTo(end Point) Segment {
	return Segment{Kind: LineKind, P0: end}
}

// PolylineTo returns a polyline segment through pts. The slice is copied.
func PolylineTo(pts ...Point) Segment {
	return Segment{Kind: PolylineKind, Points: slices.Clone(pts)}
}

func CubicTo(c1, c2, end Point) Segment {
	return Segment{Kind: CubicKind, P0: c1, P1: c2, P2: end}
}

func ArcTo(arc ArcSegment) Segment {
	return Segment{Kind: ArcKind, Arc: arc}
}

// EndPoint returns the end point of the segment, or false if none exists. Only a
// polyline without points has no end point; it ends where it started.
func (seg Segment) EndPoint() (Point, bool) {
	switch seg.Kind {
	case LineKind:
		return seg.P0, true
	case PolylineKind:
		if len(seg.Points) == 0 {
			return Point{}, false
		}
		return seg.Points[len(seg.Points)-1], true
	case CubicKind:
		return seg.P2, true
	case ArcKind:
		return seg.Arc.End, true
	default:
		panic("unreachable")
	}
}

func (seg Segment) endFrom(start Point) Point {
	if pt, ok := seg.EndPoint(); ok {
		return pt
	}
	return start
}

// Cubic returns the segment as a cubic Bézier starting at start.
// It panics if the segment isn't of kind CubicKind.
func (seg Segment) Cubic(start Point) CubicBez {
	if seg.Kind != CubicKind {
		panic(fmt.Sprintf("called Cubic on %s segment", seg.Kind))
	}
	return CubicBez{start, seg.P0, seg.P1, seg.P2}
}

func (seg Segment) Transform(aff Affine) Segment {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P0.Transform(aff))
	case PolylineKind:
		pts := make([]Point, len(seg.Points))
		for i, pt := range seg.Points {
			pts[i] = pt.Transform(aff)
		}
		return Segment{Kind: PolylineKind, Points: pts}
	case CubicKind:
		// The start point belongs to the previous segment.
		c := seg.Cubic(Point{}).Transform(aff)
		return CubicTo(c.P1, c.P2, c.P3)
	case ArcKind:
		return ArcTo(seg.Arc.Transform(aff))
	default:
		panic("unreachable")
	}
}

func (seg Segment) IsNaN() bool {
	switch seg.Kind {
	case PolylineKind:
		return slices.ContainsFunc(seg.Points, Point.IsNaN)
	case ArcKind:
		return seg.Arc.IsNaN()
	case CubicKind:
		return seg.Cubic(Point{}).IsNaN()
	default:
		return seg.P0.IsNaN()
	}
}

func (seg Segment) IsInf() bool {
	switch seg.Kind {
	case PolylineKind:
		return slices.ContainsFunc(seg.Points, Point.IsInf)
	case ArcKind:
		return seg.Arc.IsInf()
	case CubicKind:
		return seg.Cubic(Point{}).IsInf()
	default:
		return seg.P0.IsInf()
	}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("LineTo(%s)", seg.P0)
	case PolylineKind:
		pts := make([]string, len(seg.Points))
		for i, pt := range seg.Points {
			pts[i] = pt.String()
		}
		return fmt.Sprintf("PolylineTo(%s)", strings.Join(pts, ", "))
	case CubicKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	case ArcKind:
		a := seg.Arc
		return fmt.Sprintf("ArcTo(%s, %s, %g, %t, %t)", a.End, a.Radii, a.XRotation, a.LargeArc, a.Sweep)
	default:
		return "InvalidSegment"
	}
}
