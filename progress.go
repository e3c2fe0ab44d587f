package progresspath

import (
	"log/slog"
)

// ProgressPath caches what a renderer needs to draw a path as a progress
// indicator. The host calls the setters when its inputs change: setting the
// geometry measures the path, which is expensive, while setting the progress
// or the stroke thickness reuses the cached length and only recomputes the
// dash pattern.
//
// The zero value is an empty path at progress 0 with a stroke thickness of 1.
// A ProgressPath must not be mutated concurrently.
type ProgressPath struct {
	est       Estimator
	geometry  Geometry
	length    float64
	progress  float64
	thickness float64
	pattern   DashPattern
	estimates int
}

// NewProgressPath returns an empty ProgressPath that measures geometries
// with the given options.
func NewProgressPath(opts EstimatorOpts) *ProgressPath {
	return &ProgressPath{est: Estimator{Opts: opts}}
}

// SetGeometry measures g and updates the dash pattern. If g can't be
// measured, the error is returned and the previous geometry, length and
// pattern are kept.
func (p *ProgressPath) SetGeometry(g Geometry) error {
	l, err := p.est.Estimate(g)
	p.estimates++
	if err != nil {
		Logger().Warn("rejected progress path geometry", slog.Any("err", err))
		return err
	}
	p.geometry = g
	p.length = l
	return p.update()
}

// SetProgress sets the progress, nominally in [0, 100], and updates the dash
// pattern. Progress isn't clamped.
func (p *ProgressPath) SetProgress(progress float64) error {
	p.progress = progress
	return p.update()
}

// SetStrokeThickness sets the stroke thickness and updates the dash pattern.
// Thicknesses that aren't positive are rejected with an error wrapping
// [ErrInvalidStrokeThickness] and leave p unchanged.
func (p *ProgressPath) SetStrokeThickness(thickness float64) error {
	if _, err := DashPatternFor(p.length, thickness, p.progress); err != nil {
		Logger().Warn("rejected stroke thickness", slog.Float64("thickness", thickness))
		return err
	}
	p.thickness = thickness
	return p.update()
}

func (p *ProgressPath) update() error {
	d, err := DashPatternFor(p.length, p.StrokeThickness(), p.progress)
	if err != nil {
		return err
	}
	p.pattern = d
	Logger().Debug("updated dash pattern",
		slog.Float64("length", p.length),
		slog.Float64("progress", p.progress),
		slog.Float64("dash", d.Dash),
		slog.Float64("gap", d.Gap))
	return nil
}

func (p *ProgressPath) Geometry() Geometry { return p.geometry }

// Length returns the cached length of the current geometry.
func (p *ProgressPath) Length() float64 { return p.length }

func (p *ProgressPath) Progress() float64 { return p.progress }

func (p *ProgressPath) StrokeThickness() float64 {
	if p.thickness == 0 {
		return 1
	}
	return p.thickness
}

// Pattern returns the current dash pattern, in units of the stroke
// thickness.
func (p *ProgressPath) Pattern() DashPattern { return p.pattern }

// Estimates returns how many times the path has been measured.
func (p *ProgressPath) Estimates() int { return p.estimates }
