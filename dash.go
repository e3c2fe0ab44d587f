package progresspath

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidStrokeThickness is returned for stroke thicknesses that aren't
// strictly positive.
var ErrInvalidStrokeThickness = errors.New("stroke thickness must be positive")

// DashPattern is a two-element dash array, in units of the stroke
// thickness: a visible dash of length Dash followed by a gap of length Gap.
type DashPattern struct {
	Dash float64
	Gap  float64
}

// DashPatternFor maps progress onto a dash pattern for a path of the given
// length stroked with the given thickness:
//
//	Dash = pathLength / strokeThickness * progress / 100
//	Gap  = pathLength / strokeThickness
//
// The gap always spans the whole path, so the dash is drawn once from the
// start of the path and never repeats. Progress is not clamped; values
// outside [0, 100] extrapolate linearly (see [Clamp]).
//
// strokeThickness must be positive, otherwise DashPatternFor returns an
// error wrapping [ErrInvalidStrokeThickness].
func DashPatternFor(pathLength, strokeThickness, progress float64) (DashPattern, error) {
	// Also rejects NaN.
	if !(strokeThickness > 0) {
		return DashPattern{}, fmt.Errorf("%w: got %g", ErrInvalidStrokeThickness, strokeThickness)
	}
	gap := pathLength / strokeThickness
	return DashPattern{
		Dash: gap * (progress / 100),
		Gap:  gap,
	}, nil
}

// Clamp limits progress to [0, 100]. NaN becomes 0.
func Clamp(progress float64) float64 {
	if !(progress > 0) {
		return 0
	}
	return min(progress, 100)
}

// Array returns the pattern as a dash array, the form renderers consume.
func (d DashPattern) Array() []float64 {
	return []float64{d.Dash, d.Gap}
}

// UserSpace converts the pattern from stroke-thickness units to the path's
// own units.
func (d DashPattern) UserSpace(strokeThickness float64) DashPattern {
	return DashPattern{
		Dash: d.Dash * strokeThickness,
		Gap:  d.Gap * strokeThickness,
	}
}

// SVGDashArray formats the pattern as the value of an SVG stroke-dasharray
// attribute. SVG measures dashes in user units, so the pattern is scaled by
// strokeThickness first.
func (d DashPattern) SVGDashArray(strokeThickness float64) string {
	u := d.UserSpace(strokeThickness)
	return strconv.FormatFloat(u.Dash, 'f', -1, 64) + " " + strconv.FormatFloat(u.Gap, 'f', -1, 64)
}

func (d DashPattern) String() string {
	return fmt.Sprintf("[%g %g]", d.Dash, d.Gap)
}
