package progresspath

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var g Geometry
	g.MoveTo(Pt(0, 0))
	g.LineTo(Pt(3, 4))
	if _, err := Length(g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "estimated path length") || !strings.Contains(out, "length=5") {
		t.Errorf("missing estimate record in log output %q", out)
	}

	buf.Reset()
	p := NewProgressPath(EstimatorOpts{})
	if err := p.SetStrokeThickness(-1); err == nil {
		t.Fatal("expected error")
	}
	if out := buf.String(); !strings.Contains(out, "level=WARN") {
		t.Errorf("missing warning in log output %q", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) didn't restore the silent logger")
	}
}
