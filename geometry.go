package progresspath

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Figure is a single contour: a start point followed by a chain of
// segments. Each segment starts where the previous one ended; the first
// segment starts at Start.
type Figure struct {
	Start    Point
	Segments []Segment
	// Closed figures are drawn with an implicit line from the last
	// segment's end back to Start.
	Closed bool
}

// All iterates over the figure's segments, together with the point each
// segment starts at.
func (f Figure) All() iter.Seq2[Point, Segment] {
	return func(yield func(Point, Segment) bool) {
		cur := f.Start
		for _, seg := range f.Segments {
			if !yield(cur, seg) {
				return
			}
			cur = seg.endFrom(cur)
		}
	}
}

// End returns the point at which the last segment ends, or Start if the
// figure has no segments.
func (f Figure) End() Point {
	cur := f.Start
	for _, seg := range f.Segments {
		cur = seg.endFrom(cur)
	}
	return cur
}

func (f Figure) Transform(aff Affine) Figure {
	out := Figure{
		Start:    f.Start.Transform(aff),
		Segments: make([]Segment, len(f.Segments)),
		Closed:   f.Closed,
	}
	for i, seg := range f.Segments {
		out.Segments[i] = seg.Transform(aff)
	}
	return out
}

// Geometry is a path made up of zero or more figures. The zero value is an
// empty geometry, ready to use.
//
// The builder methods mirror SVG path commands. Drawing without a preceding
// [Geometry.MoveTo] starts a figure at the origin; drawing after
// [Geometry.Close] starts a new figure where the closed one started.
type Geometry struct {
	Figures []Figure
}

func (g *Geometry) MoveTo(pt Point) {
	g.Figures = append(g.Figures, Figure{Start: pt})
}

func (g *Geometry) LineTo(pt Point) { g.push(LineTo(pt)) }

func (g *Geometry) PolylineTo(pts ...Point) { g.push(PolylineTo(pts...)) }

func (g *Geometry) CubicTo(c1, c2, end Point) { g.push(CubicTo(c1, c2, end)) }

// QuadTo appends a quadratic Bézier, raised to the equivalent cubic.
func (g *Geometry) QuadTo(c, end Point) {
	q := QuadBez{g.CurrentPoint(), c, end}.Raise()
	g.push(CubicTo(q.P1, q.P2, q.P3))
}

func (g *Geometry) ArcTo(arc ArcSegment) { g.push(ArcTo(arc)) }

// Close marks the current figure as closed. It has no effect on an empty
// geometry.
func (g *Geometry) Close() {
	if len(g.Figures) == 0 {
		return
	}
	g.Figures[len(g.Figures)-1].Closed = true
}

// CurrentPoint returns the point the next segment would start at.
func (g Geometry) CurrentPoint() Point {
	if len(g.Figures) == 0 {
		return Point{}
	}
	f := &g.Figures[len(g.Figures)-1]
	if f.Closed {
		return f.Start
	}
	return f.End()
}

func (g *Geometry) push(seg Segment) {
	if len(g.Figures) == 0 {
		g.MoveTo(Point{})
	} else if last := g.Figures[len(g.Figures)-1]; last.Closed {
		g.MoveTo(last.Start)
	}
	f := &g.Figures[len(g.Figures)-1]
	f.Segments = append(f.Segments, seg)
}

// NumSegments returns the total number of segments across all figures.
func (g Geometry) NumSegments() int {
	var n int
	for _, f := range g.Figures {
		n += len(f.Segments)
	}
	return n
}

// HasArcs reports whether any figure contains an elliptical arc segment.
func (g Geometry) HasArcs() bool {
	for _, f := range g.Figures {
		for _, seg := range f.Segments {
			if seg.Kind == ArcKind {
				return true
			}
		}
	}
	return false
}

func (g Geometry) Transform(aff Affine) Geometry {
	out := Geometry{Figures: make([]Figure, len(g.Figures))}
	for i, f := range g.Figures {
		out.Figures[i] = f.Transform(aff)
	}
	return out
}

// ControlBox returns the smallest rectangle enclosing all start, end and
// control points. It contains the geometry, but isn't necessarily tight
// around curves. Arcs contribute only their end points.
func (g Geometry) ControlBox() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = rectFromPoint(pt)
			first = false
		} else {
			r = r.UnionPoint(pt)
		}
	}
	for _, f := range g.Figures {
		add(f.Start)
		for _, seg := range f.Segments {
			switch seg.Kind {
			case LineKind:
				add(seg.P0)
			case PolylineKind:
				for _, pt := range seg.Points {
					add(pt)
				}
			case CubicKind:
				add(seg.P0)
				add(seg.P1)
				add(seg.P2)
			case ArcKind:
				add(seg.Arc.End)
			default:
				panic("unreachable")
			}
		}
	}
	return r
}

func (g Geometry) IsNaN() bool {
	for _, f := range g.Figures {
		if f.Start.IsNaN() {
			return true
		}
		for _, seg := range f.Segments {
			if seg.IsNaN() {
				return true
			}
		}
	}
	return false
}

func (g Geometry) IsInf() bool {
	for _, f := range g.Figures {
		if f.Start.IsInf() {
			return true
		}
		for _, seg := range f.Segments {
			if seg.IsInf() {
				return true
			}
		}
	}
	return false
}

// SVGOptions specifies optional settings for [Geometry.SVG] and
// [Geometry.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the geometry to a string of SVG path commands.
//
// See [Geometry.WriteSVG] for a version that writes to an [io.Writer].
func (g Geometry) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	g.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the geometry to a string of SVG path commands and writes
// it to w. Every segment is written with absolute coordinates. Arc rotations
// are converted to degrees.
func (g Geometry) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	pt := func(p Point) string {
		return format(p.X) + "," + format(p.Y)
	}
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}

	first := true
	sep := func() {
		if !first {
			writef(" ")
		}
		first = false
	}
	for _, f := range g.Figures {
		sep()
		writef("M%s", pt(f.Start))
		for _, seg := range f.Segments {
			switch seg.Kind {
			case LineKind:
				sep()
				writef("L%s", pt(seg.P0))
			case PolylineKind:
				if len(seg.Points) == 0 {
					continue
				}
				coords := make([]string, len(seg.Points))
				for i, p := range seg.Points {
					coords[i] = pt(p)
				}
				sep()
				writef("L%s", strings.Join(coords, " "))
			case CubicKind:
				sep()
				writef("C%s %s %s", pt(seg.P0), pt(seg.P1), pt(seg.P2))
			case ArcKind:
				a := seg.Arc
				sep()
				writef("A%s,%s %s %s,%s %s",
					format(a.Radii.X), format(a.Radii.Y),
					format(a.XRotation*180/math.Pi),
					flag(a.LargeArc), flag(a.Sweep),
					pt(a.End))
			default:
				panic("unreachable")
			}
		}
		if f.Closed {
			sep()
			writef("Z")
		}
	}
	return err
}
