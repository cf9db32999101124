package curve

import "math"

// Circle is a circle, given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Path returns the circle as four cubic Béziers, starting at angle 0 and
// running counter-clockwise in a y-up coordinate system.
//
// The arm length is the solution from
// http://spencermortensen.com/articles/bezier-circle/, which keeps the radial
// error below 2e-4 of the radius.
func (c Circle) Path() BezPath {
	const n = 4
	const a = 0.551915024494

	x, y := c.Center.Splat()
	r := c.Radius
	p := make(BezPath, 0, n+2)
	p.MoveTo(Pt(x+r, y))
	for ix := 1; ix <= n; ix++ {
		th1 := math.Pi / 2 * float64(ix)
		th0 := th1 - math.Pi/2
		s0, c0 := math.Sincos(th0)
		var s1, c1 float64
		if ix == n {
			s1, c1 = 0, 1
		} else {
			s1, c1 = math.Sincos(th1)
		}
		p.CubicTo(
			Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
			Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
			Pt(x+r*c1, y+r*s1),
		)
	}
	p.ClosePath()
	return p
}

// Area returns the exact area of the circle.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
