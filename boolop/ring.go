package boolop

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// ring is a polygon boundary without the repeated closing point.
type ring []orb.Point

func (r ring) signedArea() float64 {
	var a float64
	for i := range r {
		p0, p1 := r[(i+len(r)-1)%len(r)], r[i]
		a += p0[0]*p1[1] - p1[0]*p0[1]
	}
	return a / 2
}

func (r ring) closed() orb.Ring {
	out := make(orb.Ring, len(r)+1)
	copy(out, r)
	out[len(r)] = r[0]
	return out
}

// openRing converts an orb ring into a ring, dropping the closing point and
// consecutive duplicates.
func openRing(raw orb.Ring) ring {
	r := make(ring, 0, len(raw))
	for _, p := range raw {
		if len(r) == 0 || r[len(r)-1] != p {
			r = append(r, p)
		}
	}
	for len(r) > 1 && r[len(r)-1] == r[0] {
		r = r[:len(r)-1]
	}
	return r
}

// fromMultiPolygon flattens mp into a list of rings, oriented so that outer
// rings are counter-clockwise and holes clockwise.
func fromMultiPolygon(mp orb.MultiPolygon) []ring {
	var out []ring
	for _, poly := range mp {
		for i, raw := range poly {
			r := openRing(raw)
			if len(r) < 3 {
				continue
			}
			if a := r.signedArea(); (i == 0) != (a > 0) {
				slices.Reverse(r)
			}
			out = append(out, r)
		}
	}
	return out
}

// assemble groups rings into polygons. Counter-clockwise rings become outer
// rings, and every clockwise ring is attached as a hole to the smallest
// outer ring containing it.
func assemble(rs []ring) orb.MultiPolygon {
	type outer struct {
		poly orb.Polygon
		area float64
	}
	var outers []outer
	var holes []ring
	for _, r := range rs {
		if a := r.signedArea(); a > 0 {
			outers = append(outers, outer{poly: orb.Polygon{r.closed()}, area: a})
		} else {
			holes = append(holes, r)
		}
	}
	if len(outers) == 0 {
		return nil
	}
	for _, h := range holes {
		pt := h.probe()
		best := -1
		for i, o := range outers {
			if !planar.RingContains(o.poly[0], pt) {
				continue
			}
			if best < 0 || o.area < outers[best].area {
				best = i
			}
		}
		if best < 0 {
			// Only reachable through rounding; the hole belongs to the
			// largest outer ring.
			for i, o := range outers {
				if best < 0 || o.area > outers[best].area {
					best = i
				}
			}
		}
		outers[best].poly = append(outers[best].poly, h.closed())
	}
	mp := make(orb.MultiPolygon, len(outers))
	for i, o := range outers {
		mp[i] = o.poly
	}
	return mp
}

// probe returns the midpoint of the longest edge of r, a point that lies on
// r but rarely on any other ring.
func (r ring) probe() orb.Point {
	c := make(chain, len(r)+1)
	copy(c, r)
	c[len(r)] = r[0]
	i := c.longestEdge()
	return midpoint(c[i], c[i+1])
}

func midpoint(a, b orb.Point) orb.Point {
	return orb.Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

// winding returns the winding number of rs around p.
func winding(rs []ring, p orb.Point) int {
	w := 0
	px, py := p[0], p[1]
	for _, r := range rs {
		for i := range r {
			a, b := r[i], r[(i+1)%len(r)]
			cross := (b[0]-a[0])*(py-a[1]) - (px-a[0])*(b[1]-a[1])
			if a[1] <= py {
				if b[1] > py && cross > 0 {
					w++
				}
			} else if b[1] <= py && cross < 0 {
				w--
			}
		}
	}
	return w
}

// segmentDistance returns the distance from p to the segment ab.
func segmentDistance(p, a, b orb.Point) float64 {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l2 := dx*dx + dy*dy
	var t float64
	if l2 != 0 {
		t = ((p[0]-a[0])*dx + (p[1]-a[1])*dy) / l2
		t = min(max(t, 0), 1)
	}
	return math.Hypot(p[0]-(a[0]+t*dx), p[1]-(a[1]+t*dy))
}
