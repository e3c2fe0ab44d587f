package progresspath

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnsupportedSegmentKind is returned when estimating the length of a
// geometry that contains a segment whose length cannot be computed. That is
// every elliptical arc, and any segment of an unknown kind such as the zero
// Segment.
var ErrUnsupportedSegmentKind = errors.New("unsupported segment kind")

// SegmentError describes a segment that made an estimate fail.
//
// Kind is the segment's kind as stored, which may be a value other than the
// declared kinds for segments that weren't built with the constructors.
type SegmentError struct {
	// Index of the figure in the geometry.
	Figure int
	// Index of the segment in the figure.
	Segment int
	Kind    SegmentKind
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("figure %d, segment %d (%s): %s", e.Figure, e.Segment, e.Kind, e.Err)
}

func (e *SegmentError) Unwrap() error { return e.Err }

// EstimatorOpts configures an [Estimator].
type EstimatorOpts struct {
	// IncludeClosing adds the implicit closing line of closed figures to the
	// length. By default only explicit segments are measured.
	IncludeClosing bool
}

// Estimator computes the arc length of geometries. The zero value is ready
// to use and is what [Length] uses.
//
// An Estimator holds no state besides its options and may be used
// concurrently.
type Estimator struct {
	Opts EstimatorOpts
}

// Length returns the total arc length of g using the default options.
// See [Estimator.Estimate].
func Length(g Geometry) (float64, error) {
	return Estimator{}.Estimate(g)
}

// Estimate returns the total arc length of g, the sum of the lengths of all
// segments of all figures.
//
// Lines and polylines are measured exactly. Cubic Béziers are measured with
// [CubicBez.SampledArclen]. A geometry without figures, or whose figures have
// no segments, has length 0.
//
// If g contains an elliptical arc or a segment of unknown kind anywhere,
// Estimate returns a [*SegmentError] wrapping [ErrUnsupportedSegmentKind]
// for the first such segment and no length. NaN or infinite coordinates are not checked and propagate
// into the result.
func (est Estimator) Estimate(g Geometry) (float64, error) {
	if err := checkMeasurable(g); err != nil {
		return 0, err
	}

	var total float64
	for _, f := range g.Figures {
		cur := f.Start
		for start, seg := range f.All() {
			total += segmentLength(start, seg)
			cur = seg.endFrom(start)
		}
		if est.Opts.IncludeClosing && f.Closed {
			total += cur.Distance(f.Start)
		}
	}

	Logger().Debug("estimated path length",
		slog.Int("figures", len(g.Figures)),
		slog.Int("segments", g.NumSegments()),
		slog.Float64("length", total))
	return total, nil
}

// checkMeasurable rejects geometries that segmentLength can't measure before
// any work is done.
func checkMeasurable(g Geometry) error {
	for i, f := range g.Figures {
		for j, seg := range f.Segments {
			switch seg.Kind {
			case LineKind, PolylineKind, CubicKind:
			default:
				return &SegmentError{Figure: i, Segment: j, Kind: seg.Kind, Err: ErrUnsupportedSegmentKind}
			}
		}
	}
	return nil
}

func segmentLength(start Point, seg Segment) float64 {
	switch seg.Kind {
	case LineKind:
		return Line{start, seg.P0}.Length()
	case PolylineKind:
		return polylineLengthFrom(start, seg.Points)
	case CubicKind:
		return seg.Cubic(start).SampledArclen()
	default:
		panic("unreachable")
	}
}
