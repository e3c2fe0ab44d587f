// Command progressdash prints the length of an SVG path and the dash array
// that strokes a given percentage of it.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"honnef.co/go/progresspath"
)

type Dash struct {
	Progress  float64 `short:"p" default:"0" desc:"Progress in percent, clamped to [0,100]"`
	Thickness float64 `short:"w" default:"1" desc:"Stroke thickness"`
	Closing   bool    `desc:"Count closing lines of closed figures"`
	Precision int     `default:"0" desc:"Maximum precision of printed coordinates"`
	Verbose   bool    `short:"v" desc:"Log debug output to stderr"`
	Data      string  `index:"0" desc:"SVG path data"`
}

func main() {
	root := argp.NewCmd(&Dash{}, "Compute progress dash arrays for SVG paths")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Dash) Run() error {
	return cmd.run(os.Stdout)
}

func (cmd *Dash) run(w io.Writer) error {
	if cmd.Data == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		progresspath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g, err := progresspath.ParseSVGPath(cmd.Data)
	if err != nil {
		return err
	}

	p := progresspath.NewProgressPath(progresspath.EstimatorOpts{IncludeClosing: cmd.Closing})
	if err := p.SetStrokeThickness(cmd.Thickness); err != nil {
		return err
	}
	if err := p.SetGeometry(g); err != nil {
		return err
	}
	if err := p.SetProgress(progresspath.Clamp(cmd.Progress)); err != nil {
		return err
	}

	box := g.ControlBox()
	fmt.Fprintln(w, "Path:", g.SVG(progresspath.SVGOptions{MaxPrecision: cmd.Precision}))
	fmt.Fprintf(w, "Bounds: %gx%g\n", box.Width(), box.Height())
	fmt.Fprintf(w, "Length: %g\n", p.Length())
	fmt.Fprintf(w, "Dash array: %s\n", p.Pattern())
	_, err = fmt.Fprintf(w, "stroke-dasharray=%q\n", p.Pattern().SVGDashArray(p.StrokeThickness()))
	return err
}
