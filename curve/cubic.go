package curve

import "math"

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// SignedArea returns the signed area of the region bounded by the cubic and
// the straight lines joining its end points to the origin. Summed over the
// segments of a closed path, this is the area enclosed by the path.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// flattenCount returns the number of equal parameter steps needed so that
// the polyline through them stays within tolerance of the cubic.
//
// The deviation of the chord from a curve over a parameter step of h is at
// most h²·max|B''|/8, and max|B''| ≤ 6·max(|P0−2P1+P2|, |P1−2P2+P3|). The
// bound depends only on vector norms, so congruent cubics flatten to the same
// number of steps.
func (c CubicBez) flattenCount(tolerance float64) int {
	d0 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Hypot()
	d1 := Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Hypot()
	dd := max(d0, d1)
	return max(int(math.Ceil(math.Sqrt(0.75*dd/tolerance))), 1)
}

// Flatten appends the points of a polyline approximating the cubic to dst,
// excluding P0 and ending exactly at P3.
func (c CubicBez) Flatten(dst []Point, tolerance float64) []Point {
	n := c.flattenCount(tolerance)
	step := 1.0 / float64(n)
	for i := 1; i < n; i++ {
		dst = append(dst, c.Eval(float64(i)*step))
	}
	return append(dst, c.P3)
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

// raiseQuad converts the quadratic Bézier (p0, p1, p2) to the equivalent cubic.
func raiseQuad(p0, p1, p2 Point) CubicBez {
	return CubicBez{
		p0,
		p0.Translate(p1.Sub(p0).Mul(2.0 / 3.0)),
		p2.Translate(p1.Sub(p2).Mul(2.0 / 3.0)),
		p2,
	}
}
