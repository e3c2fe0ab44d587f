// Package progresspath measures vector paths and turns a progress value into
// the dash pattern that draws that fraction of a path's stroke.
//
// A path stroked with the two-element dash array [L·p, L], where L is the
// path's length in units of the stroke thickness and p the progress as a
// fraction, shows exactly the first p of the path, however it curves. This
// package computes both halves of that: the length, and the pattern.
//
// # Geometries
//
// A [Geometry] is an ordered list of [Figure] values, each a start point
// followed by a chain of [Segment] values. Segments are lines, polylines,
// cubic Béziers and elliptical arcs. A segment starts where the previous
// one ended, so only end and control points are stored. Geometries can be
// built with methods like [Geometry.MoveTo] and [Geometry.CubicTo], parsed
// from SVG path data with [ParseSVGPath], and written back with
// [Geometry.SVG].
//
// # Lengths
//
// [Length] and [Estimator] compute a geometry's arc length. Lines and
// polylines are measured exactly. Cubic Béziers are sampled at a fixed
// 1000 parameter values ([CubicSamples]) and measured as the polyline
// through those samples; the result is reproducible and does not depend on
// an accuracy parameter. The length of elliptical arcs is not supported and
// results in [ErrUnsupportedSegmentKind].
//
// # Dash patterns
//
// [DashPatternFor] maps a path length, a stroke thickness and a progress in
// [0, 100] to a [DashPattern]. Measuring is expensive and mapping is cheap,
// so hosts measure once per geometry and map on every progress change.
// [ProgressPath] implements that caching for hosts that want it.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug records
// about estimates and pattern updates.
package progresspath
