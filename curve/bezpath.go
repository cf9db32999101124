package curve

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is an element of a Bézier path.
//
// The meaning of the points depends on Kind. MoveTo and LineTo use P0, QuadTo
// uses P0 as the control point and P1 as the end point, and CubicTo uses P0
// and P1 as control points and P2 as the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the point the element leaves the pen at. ClosePath has no
// end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() || el.P1.IsInf() || el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path, represented as a sequence of path elements.
//
// A valid path has a MoveTo at the beginning of each subpath.
type BezPath []PathElement

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Transform returns a new path with an affine transformation applied to every
// element. The receiver is not modified.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Subpaths returns the number of subpaths, which is the number of MoveTo
// elements.
func (p BezPath) Subpaths() int {
	n := 0
	for _, el := range p {
		if el.Kind == MoveToKind {
			n++
		}
	}
	return n
}

// Closed reports whether every subpath of p is closed, either explicitly with
// ClosePath or by ending on its starting point. An empty path isn't closed.
func (p BezPath) Closed() bool {
	if len(p) == 0 {
		return false
	}
	var start, last Point
	open := false
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			if open && last != start {
				return false
			}
			start, last = el.P0, el.P0
			open = true
		case ClosePathKind:
			last = start
			open = false
		default:
			last, _ = el.EndPoint()
			open = true
		}
	}
	return !open || last == start
}

func (p BezPath) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// SignedArea returns the signed area of the path. Open subpaths are treated
// as if they were closed with a straight line.
func (p BezPath) SignedArea() float64 {
	var sum float64
	var start, last Point
	started := false
	closeSubpath := func() {
		if started && last != start {
			sum += Vec2(last).Cross(Vec2(start)) * 0.5
		}
		last = start
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			closeSubpath()
			start, last = el.P0, el.P0
			started = true
		case LineToKind:
			sum += Vec2(last).Cross(Vec2(el.P0)) * 0.5
			last = el.P0
		case QuadToKind:
			sum += raiseQuad(last, el.P0, el.P1).SignedArea()
			last = el.P1
		case CubicToKind:
			sum += CubicBez{last, el.P0, el.P1, el.P2}.SignedArea()
			last = el.P2
		case ClosePathKind:
			closeSubpath()
		}
	}
	closeSubpath()
	return sum
}

// FlattenRings approximates every subpath with a polyline whose distance from
// the path stays within tolerance. Each ring lists its vertices once; the
// closing edge back to the first vertex is implicit.
func (p BezPath) FlattenRings(tolerance float64) [][]Point {
	var rings [][]Point
	var ring []Point
	var last Point
	flush := func() {
		if len(ring) > 1 && ring[len(ring)-1] == ring[0] {
			ring = ring[:len(ring)-1]
		}
		if len(ring) > 0 {
			rings = append(rings, ring)
		}
		ring = nil
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			flush()
			ring = []Point{el.P0}
			last = el.P0
		case LineToKind:
			ring = append(ring, el.P0)
			last = el.P0
		case QuadToKind:
			ring = raiseQuad(last, el.P0, el.P1).Flatten(ring, tolerance)
			last = el.P1
		case CubicToKind:
			ring = CubicBez{last, el.P0, el.P1, el.P2}.Flatten(ring, tolerance)
			last = el.P2
		case ClosePathKind:
			flush()
		}
	}
	flush()
	return rings
}
