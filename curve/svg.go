package curve

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Only absolute commands are written. The output is a pure function of the
// elements and options, which makes it suitable for byte-wise comparison.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	f := opts.format
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", f(el.P0.X), f(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", f(el.P0.X), f(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				f(el.P0.X), f(el.P0.Y),
				f(el.P1.X), f(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				f(el.P0.X), f(el.P0.Y),
				f(el.P1.X), f(el.P1.Y),
				f(el.P2.X), f(el.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}

// SyntaxError describes malformed SVG path data.
type SyntaxError struct {
	// Offset is the byte offset in the input at which the error was detected.
	Offset int
	Msg    string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("curve: invalid path data at offset %d: %s", err.Offset, err.Msg)
}

type svgScanner struct {
	s   string
	pos int
}

func (sc *svgScanner) skipSeparators() {
	for sc.pos < len(sc.s) {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.pos++
		default:
			return
		}
	}
}

func (sc *svgScanner) done() bool {
	sc.skipSeparators()
	return sc.pos >= len(sc.s)
}

func (sc *svgScanner) atNumber() bool {
	if sc.done() {
		return false
	}
	switch c := sc.s[sc.pos]; {
	case c >= '0' && c <= '9', c == '.', c == '-', c == '+':
		return true
	default:
		return false
	}
}

func (sc *svgScanner) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: sc.pos, Msg: fmt.Sprintf(format, args...)}
}

// number scans a single number. SVG allows numbers to be packed without
// separators ("1-2", "1.5.5"), so the scan stops at the first byte that
// cannot continue the current number.
func (sc *svgScanner) number() (float64, error) {
	if !sc.atNumber() {
		return 0, sc.errorf("expected number")
	}
	start := sc.pos
	i := sc.pos
	if c := sc.s[i]; c == '+' || c == '-' {
		i++
	}
	digits := 0
	for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
		i++
		digits++
	}
	if i < len(sc.s) && sc.s[i] == '.' {
		i++
		for i < len(sc.s) && sc.s[i] >= '0' && sc.s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, sc.errorf("malformed number")
	}
	if i < len(sc.s) && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < len(sc.s) && (sc.s[j] == '+' || sc.s[j] == '-') {
			j++
		}
		if j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
			for j < len(sc.s) && sc.s[j] >= '0' && sc.s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:i], 64)
	if err != nil {
		return 0, sc.errorf("malformed number %q", sc.s[start:i])
	}
	sc.pos = i
	return v, nil
}

func (sc *svgScanner) point(rel bool, cur Point) (Point, error) {
	x, err := sc.number()
	if err != nil {
		return Point{}, err
	}
	y, err := sc.number()
	if err != nil {
		return Point{}, err
	}
	if rel {
		return Pt(cur.X+x, cur.Y+y), nil
	}
	return Pt(x, y), nil
}

// ParseSVG parses SVG path data into a Bézier path.
//
// All commands of the SVG path grammar except elliptical arcs are supported.
// Drawing commands that directly follow a ClosePath start a new subpath at
// the previous subpath's starting point, as mandated by SVG.
func ParseSVG(data string) (BezPath, error) {
	sc := &svgScanner{s: data}
	var p BezPath
	var cmd byte
	var cur, start, lastCtrl Point
	var lastKind byte
	closed := false

	for !sc.done() {
		if c := sc.s[sc.pos]; (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			cmd = c
			sc.pos++
		} else if cmd == 0 {
			return nil, sc.errorf("path data must start with a command")
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, sc.errorf("unexpected number after closepath")
		}

		rel := cmd >= 'a' && cmd <= 'z'
		upper := cmd &^ 0x20
		if len(p) == 0 && upper != 'M' {
			return nil, sc.errorf("path data must start with a moveto")
		}
		if closed && upper != 'M' && upper != 'Z' {
			p.MoveTo(start)
			closed = false
		}

		switch upper {
		case 'M':
			pt, err := sc.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.MoveTo(pt)
			cur, start = pt, pt
			closed = false
			// Subsequent coordinate pairs are implicit lineto commands.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			pt, err := sc.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.LineTo(pt)
			cur = pt
		case 'H', 'V':
			v, err := sc.number()
			if err != nil {
				return nil, err
			}
			pt := cur
			switch {
			case upper == 'H' && rel:
				pt.X += v
			case upper == 'H':
				pt.X = v
			case rel:
				pt.Y += v
			default:
				pt.Y = v
			}
			p.LineTo(pt)
			cur = pt
		case 'C', 'S':
			var p1 Point
			if upper == 'C' {
				var err error
				if p1, err = sc.point(rel, cur); err != nil {
					return nil, err
				}
			} else if lastKind == 'C' || lastKind == 'S' {
				p1 = cur.Translate(cur.Sub(lastCtrl))
			} else {
				p1 = cur
			}
			p2, err := sc.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p3, err := sc.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.CubicTo(p1, p2, p3)
			cur, lastCtrl = p3, p2
		case 'Q', 'T':
			var p1 Point
			if upper == 'Q' {
				var err error
				if p1, err = sc.point(rel, cur); err != nil {
					return nil, err
				}
			} else if lastKind == 'Q' || lastKind == 'T' {
				p1 = cur.Translate(cur.Sub(lastCtrl))
			} else {
				p1 = cur
			}
			p2, err := sc.point(rel, cur)
			if err != nil {
				return nil, err
			}
			p.QuadTo(p1, p2)
			cur, lastCtrl = p2, p1
		case 'Z':
			p.ClosePath()
			cur = start
			closed = true
		case 'A':
			return nil, sc.errorf("elliptical arcs are not supported")
		default:
			return nil, sc.errorf("unknown command %q", cmd)
		}
		lastKind = upper
	}
	return p, nil
}
