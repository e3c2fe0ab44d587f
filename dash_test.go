package progresspath

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDashPatternEndpoints(t *testing.T) {
	for _, l := range []float64{0, 1, 5, 123.456, 1e6} {
		for _, th := range []float64{0.5, 1, 2, 7.25} {
			d, err := DashPatternFor(l, th, 0)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			diff(t, DashPattern{0, l / th}, d)

			d, err = DashPatternFor(l, th, 100)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			diff(t, DashPattern{l / th, l / th}, d)
		}
	}
}

func TestDashPatternLinear(t *testing.T) {
	const l, th = 250.0, 4.0
	progress := []float64{-20, 0, 12.5, 33, 50, 99.9, 100, 150}
	for _, p1 := range progress {
		for _, p2 := range progress {
			d1, _ := DashPatternFor(l, th, p1)
			d2, _ := DashPatternFor(l, th, p2)
			want := (l / th) * (p2 - p1) / 100
			if got := d2.Dash - d1.Dash; math.Abs(got-want) > 1e-9 {
				t.Errorf("dash(%g) - dash(%g) = %g, want %g", p2, p1, got, want)
			}
			if d1.Gap != d2.Gap {
				t.Errorf("gap changed with progress: %g vs %g", d1.Gap, d2.Gap)
			}
		}
	}
}

func TestDashPatternUnclamped(t *testing.T) {
	d, err := DashPatternFor(10, 1, 150)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DashPattern{15, 10}, d)

	d, err = DashPatternFor(10, 1, -50)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DashPattern{-5, 10}, d)
}

func TestDashPatternInvalidThickness(t *testing.T) {
	for _, th := range []float64{0, -1, math.Inf(-1), math.NaN()} {
		_, err := DashPatternFor(10, th, 50)
		if !errors.Is(err, ErrInvalidStrokeThickness) {
			t.Errorf("got error %v for thickness %g, want %v", err, th, ErrInvalidStrokeThickness)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-10, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{1000, 100},
		{math.NaN(), 0},
		{math.Inf(1), 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestDashPatternUserSpace(t *testing.T) {
	d, err := DashPatternFor(30, 3, 40)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{4, 10}, d.Array(), cmpopts.EquateApprox(0, 1e-12))
	diff(t, DashPattern{12, 30}, d.UserSpace(3), cmpopts.EquateApprox(0, 1e-12))
	if got, want := d.SVGDashArray(3), "12 30"; got != want {
		t.Errorf("got stroke-dasharray %q, want %q", got, want)
	}
}
