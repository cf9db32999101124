package boolop

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// SelfIntersects reports whether any two non-adjacent edges of r touch or
// cross, or whether two adjacent edges fold back onto each other. The ring
// may be given with or without its closing point.
func SelfIntersects(r orb.Ring, opts Options) bool {
	eps := opts.epsilon()
	rg := openRing(r)
	n := len(rg)
	if n < 3 {
		return false
	}
	es := edges([]ring{rg})
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return es[order[i]].minX() < es[order[j]].minX() })

	for oi, i := range order {
		a := es[i]
		bound := orb.Bound{Min: a.p, Max: a.p}.Extend(a.q).Pad(eps)
		for _, k := range order[oi+1:] {
			b := es[k]
			if b.minX() > bound.Max[0] {
				break
			}
			if !bound.Intersects(orb.Bound{Min: b.p, Max: b.p}.Extend(b.q)) {
				continue
			}
			lo, hi := min(i, k), max(i, k)
			adjacent := hi-lo == 1 || (lo == 0 && hi == n-1)
			if segmentsTouch(a, b, adjacent, eps) {
				return true
			}
		}
	}
	return false
}

// segmentsTouch reports whether a and b share a point. Adjacent edges always
// share their common vertex, so for them only collinear overlap counts.
func segmentsTouch(a, b edge, adjacent bool, eps float64) bool {
	p, q := a.p, b.p
	rx, ry := a.q[0]-p[0], a.q[1]-p[1]
	sx, sy := b.q[0]-q[0], b.q[1]-q[1]
	rl, sl := math.Hypot(rx, ry), math.Hypot(sx, sy)
	den := rx*sy - ry*sx
	qpx, qpy := q[0]-p[0], q[1]-p[1]

	if math.Abs(den) <= eps*rl*sl {
		if math.Abs(qpx*ry-qpy*rx) > eps*rl {
			return false
		}
		// Collinear; project b onto a.
		t0 := (qpx*rx + qpy*ry) / (rl * rl)
		t1 := ((b.q[0]-p[0])*rx + (b.q[1]-p[1])*ry) / (rl * rl)
		lo, hi := min(t0, t1), max(t0, t1)
		overlap := min(hi, 1) - max(lo, 0)
		if adjacent {
			return overlap > eps/rl
		}
		return overlap >= -eps/rl
	}
	if adjacent {
		return false
	}
	t := (qpx*sy - qpy*sx) / den
	u := (qpx*ry - qpy*rx) / den
	te, ue := eps/rl, eps/sl
	return t >= -te && t <= 1+te && u >= -ue && u <= 1+ue
}
