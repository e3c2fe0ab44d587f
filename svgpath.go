package progresspath

import (
	"errors"
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// ErrInvalidPathData is returned by [ParseSVGPath] for malformed path data.
var ErrInvalidPathData = errors.New("invalid path data")

// SyntaxError describes where and why path data couldn't be parsed.
type SyntaxError struct {
	// Byte offset into the path data.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrInvalidPathData, e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrInvalidPathData }

// ParseSVGPath parses SVG path data, the value of a path element's d
// attribute, into a geometry.
//
// All SVG commands are supported. Quadratic Béziers (Q, T) are raised to
// cubics, smooth curves (S, T) reflect the previous control point, and
// horizontal and vertical lines become line segments. A run of more than
// one coordinate pair after L (or after the first pair of M) becomes a
// single polyline segment. Elliptical arcs become [ArcKind] segments, which
// can be parsed and serialized but not measured.
func ParseSVGPath(d string) (Geometry, error) {
	p := &pathParser{b: []byte(d)}
	if err := p.parse(); err != nil {
		return Geometry{}, err
	}
	return p.g, nil
}

type pathParser struct {
	b []byte
	i int
	g Geometry

	// Command of the previous segment, upper case, and its last control
	// point. Used to reflect control points for S and T.
	prev     byte
	prevCtrl Point
}

func (p *pathParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.i, Msg: fmt.Sprintf(format, args...)}
}

func (p *pathParser) skip() {
	for p.i < len(p.b) {
		switch p.b[p.i] {
		case ' ', ',', '\n', '\r', '\t', '\f':
			p.i++
		default:
			return
		}
	}
}

func (p *pathParser) atNumber() bool {
	p.skip()
	if p.i >= len(p.b) {
		return false
	}
	c := p.b[p.i]
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func (p *pathParser) num() (float64, error) {
	p.skip()
	f, n := strconv.ParseFloat(p.b[p.i:])
	if n == 0 {
		if p.i >= len(p.b) {
			return 0, p.errorf("unexpected end of path data")
		}
		return 0, p.errorf("expected number, found %q", p.b[p.i])
	}
	p.i += n
	return f, nil
}

func (p *pathParser) flag() (bool, error) {
	p.skip()
	if p.i >= len(p.b) {
		return false, p.errorf("unexpected end of path data")
	}
	switch p.b[p.i] {
	case '0':
		p.i++
		return false, nil
	case '1':
		p.i++
		return true, nil
	default:
		return false, p.errorf("expected flag, found %q", p.b[p.i])
	}
}

// point parses a coordinate pair, relative to the current point if rel.
func (p *pathParser) point(rel bool) (Point, error) {
	x, err := p.num()
	if err != nil {
		return Point{}, err
	}
	y, err := p.num()
	if err != nil {
		return Point{}, err
	}
	pt := Pt(x, y)
	if rel {
		pt = pt.Translate(Vec2(p.g.CurrentPoint()))
	}
	return pt, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	default:
		return false
	}
}

func (p *pathParser) parse() error {
	var cmd byte
	p.skip()
	for p.i < len(p.b) {
		if c := p.b[p.i]; isCommand(c) {
			if len(p.g.Figures) == 0 && c != 'M' && c != 'm' {
				return p.errorf("path data must start with a moveto, found %q", c)
			}
			cmd = c
			p.i++
		} else if cmd == 0 || !p.atNumber() {
			return p.errorf("expected command, found %q", c)
		}

		var err error
		cmd, err = p.command(cmd)
		if err != nil {
			return err
		}
		p.skip()
	}
	return nil
}

// command parses the arguments of one command and returns the command that
// implicitly applies to further arguments.
func (p *pathParser) command(cmd byte) (byte, error) {
	rel := cmd >= 'a'
	upper := cmd &^ 0x20
	cur := p.g.CurrentPoint()

	switch upper {
	case 'M':
		pt, err := p.point(rel)
		if err != nil {
			return 0, err
		}
		p.g.MoveTo(pt)
		p.prev = 'M'
		// Further pairs are lines.
		if p.atNumber() {
			if err := p.lines(rel); err != nil {
				return 0, err
			}
		}
		if rel {
			return 'l', nil
		}
		return 'L', nil
	case 'Z':
		p.g.Close()
		p.prev = 'Z'
		// Arguments may not follow a closepath.
		return 0, nil
	case 'L':
		if err := p.lines(rel); err != nil {
			return 0, err
		}
	case 'H':
		x, err := p.num()
		if err != nil {
			return 0, err
		}
		if rel {
			x += cur.X
		}
		p.g.LineTo(Pt(x, cur.Y))
		p.prev = 'L'
	case 'V':
		y, err := p.num()
		if err != nil {
			return 0, err
		}
		if rel {
			y += cur.Y
		}
		p.g.LineTo(Pt(cur.X, y))
		p.prev = 'L'
	case 'C', 'S':
		var c1 Point
		if upper == 'C' {
			var err error
			if c1, err = p.point(rel); err != nil {
				return 0, err
			}
		} else if p.prev == 'C' {
			c1 = p.prevCtrl.Translate(cur.Sub(p.prevCtrl).Mul(2))
		} else {
			c1 = cur
		}
		c2, err := p.point(rel)
		if err != nil {
			return 0, err
		}
		end, err := p.point(rel)
		if err != nil {
			return 0, err
		}
		p.g.CubicTo(c1, c2, end)
		p.prev, p.prevCtrl = 'C', c2
	case 'Q', 'T':
		var c Point
		if upper == 'Q' {
			var err error
			if c, err = p.point(rel); err != nil {
				return 0, err
			}
		} else if p.prev == 'Q' {
			c = p.prevCtrl.Translate(cur.Sub(p.prevCtrl).Mul(2))
		} else {
			c = cur
		}
		end, err := p.point(rel)
		if err != nil {
			return 0, err
		}
		p.g.QuadTo(c, end)
		p.prev, p.prevCtrl = 'Q', c
	case 'A':
		if err := p.arc(rel); err != nil {
			return 0, err
		}
		p.prev = 'A'
	default:
		panic("unreachable")
	}
	return cmd, nil
}

// lines parses one or more coordinate pairs. A single pair becomes a line, a
// longer run a polyline.
func (p *pathParser) lines(rel bool) error {
	var pts []Point
	cur := p.g.CurrentPoint()
	for {
		x, err := p.num()
		if err != nil {
			return err
		}
		y, err := p.num()
		if err != nil {
			return err
		}
		pt := Pt(x, y)
		if rel {
			pt = pt.Translate(Vec2(cur))
		}
		pts = append(pts, pt)
		cur = pt
		if !p.atNumber() {
			break
		}
	}
	if len(pts) == 1 {
		p.g.LineTo(pts[0])
	} else {
		p.g.PolylineTo(pts...)
	}
	p.prev = 'L'
	return nil
}

func (p *pathParser) arc(rel bool) error {
	rx, err := p.num()
	if err != nil {
		return err
	}
	ry, err := p.num()
	if err != nil {
		return err
	}
	rot, err := p.num()
	if err != nil {
		return err
	}
	large, err := p.flag()
	if err != nil {
		return err
	}
	sweep, err := p.flag()
	if err != nil {
		return err
	}
	end, err := p.point(rel)
	if err != nil {
		return err
	}
	p.g.ArcTo(ArcSegment{
		End:       end,
		Radii:     Vec(math.Abs(rx), math.Abs(ry)),
		XRotation: rot * math.Pi / 180,
		LargeArc:  large,
		Sweep:     sweep,
	})
	return nil
}
