package boolop

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

type edge struct {
	p, q orb.Point
}

func (e edge) minX() float64 { return min(e.p[0], e.q[0]) }

// edges returns the edges of all rings, in ring order.
func edges(rs []ring) []edge {
	var out []edge
	for _, r := range rs {
		for i := range r {
			out = append(out, edge{r[i], r[(i+1)%len(r)]})
		}
	}
	return out
}

// snap replaces every vertex of rb that lies within eps of a vertex of ra
// with that vertex, so that nearly shared vertices become exactly shared.
func snap(ra, rb []ring, eps float64) []ring {
	cell := eps * 4
	type key [2]int64
	keyOf := func(p orb.Point) key {
		return key{int64(math.Floor(p[0] / cell)), int64(math.Floor(p[1] / cell))}
	}
	grid := make(map[key][]orb.Point)
	for _, r := range ra {
		for _, p := range r {
			k := keyOf(p)
			grid[k] = append(grid[k], p)
		}
	}

	out := make([]ring, 0, len(rb))
	for _, r := range rb {
		nr := make(ring, 0, len(r))
		for _, p := range r {
			k := keyOf(p)
			best := p
			for dx := int64(-1); dx <= 1; dx++ {
				for dy := int64(-1); dy <= 1; dy++ {
					for _, c := range grid[key{k[0] + dx, k[1] + dy}] {
						if math.Hypot(c[0]-p[0], c[1]-p[1]) <= eps {
							best = c
						}
					}
				}
			}
			if len(nr) == 0 || nr[len(nr)-1] != best {
				nr = append(nr, best)
			}
		}
		for len(nr) > 1 && nr[len(nr)-1] == nr[0] {
			nr = nr[:len(nr)-1]
		}
		if len(nr) >= 3 {
			out = append(out, nr)
		}
	}
	return out
}

// split is a point at which an edge has to be cut, at parameter t along it.
type split struct {
	t float64
	p orb.Point
}

// graph collects the cut points of both operands' edges. Every cut point is
// also a node at which boundaries are broken into chains.
type graph struct {
	eps    float64
	splitA [][]split
	splitB [][]split
	nodes  map[orb.Point]struct{}
}

// intersect finds all intersections between edges of a and edges of b. Edges
// of b are sorted by their smallest x coordinate, which bounds the candidates
// for each edge of a.
func (g *graph) intersect(ea, eb []edge) {
	ia := make([]int, len(ea))
	for i := range ia {
		ia[i] = i
	}
	ib := make([]int, len(eb))
	for i := range ib {
		ib[i] = i
	}
	sort.SliceStable(ia, func(i, j int) bool { return ea[ia[i]].minX() < ea[ia[j]].minX() })
	sort.SliceStable(ib, func(i, j int) bool { return eb[ib[i]].minX() < eb[ib[j]].minX() })
	bmin := make([]float64, len(ib))
	for i, k := range ib {
		bmin[i] = eb[k].minX()
	}

	eps := g.eps
	for _, i := range ia {
		a := ea[i]
		axmin, axmax := min(a.p[0], a.q[0])-eps, max(a.p[0], a.q[0])+eps
		aymin, aymax := min(a.p[1], a.q[1])-eps, max(a.p[1], a.q[1])+eps
		hi := sort.Search(len(bmin), func(k int) bool { return bmin[k] > axmax })
		for _, k := range ib[:hi] {
			b := eb[k]
			if max(b.p[0], b.q[0]) < axmin {
				continue
			}
			if max(b.p[1], b.q[1]) < aymin || min(b.p[1], b.q[1]) > aymax {
				continue
			}
			g.cross(i, k, a, b)
		}
	}
}

// cross records the intersection of edge i of a with edge k of b. Collinear
// overlaps cut each edge at the other's end points. Intersections within eps
// of an end point reuse that end point, and both edges are cut at the
// identical point.
func (g *graph) cross(i, k int, a, b edge) {
	eps := g.eps
	p, q := a.p, b.p
	rx, ry := a.q[0]-p[0], a.q[1]-p[1]
	sx, sy := b.q[0]-q[0], b.q[1]-q[1]
	rl, sl := math.Hypot(rx, ry), math.Hypot(sx, sy)
	den := rx*sy - ry*sx
	qpx, qpy := q[0]-p[0], q[1]-p[1]

	if math.Abs(den) <= eps*rl*sl {
		if math.Abs(qpx*ry-qpy*rx) > eps*rl {
			// parallel
			return
		}
		for _, pt := range [2]orb.Point{b.p, b.q} {
			t := ((pt[0]-p[0])*rx + (pt[1]-p[1])*ry) / (rl * rl)
			if eps/rl < t && t < 1-eps/rl {
				g.splitA[i] = append(g.splitA[i], split{t, pt})
				g.nodes[pt] = struct{}{}
			}
		}
		for _, pt := range [2]orb.Point{a.p, a.q} {
			u := ((pt[0]-q[0])*sx + (pt[1]-q[1])*sy) / (sl * sl)
			if eps/sl < u && u < 1-eps/sl {
				g.splitB[k] = append(g.splitB[k], split{u, pt})
				g.nodes[pt] = struct{}{}
			}
		}
		return
	}

	t := (qpx*sy - qpy*sx) / den
	u := (qpx*ry - qpy*rx) / den
	te, ue := eps/rl, eps/sl
	if t < -te || t > 1+te || u < -ue || u > 1+ue {
		return
	}
	tin := te < t && t < 1-te
	uin := ue < u && u < 1-ue
	var pt orb.Point
	switch {
	case !tin && t <= te:
		pt = a.p
	case !tin:
		pt = a.q
	case !uin && u <= ue:
		pt = b.p
	case !uin:
		pt = b.q
	default:
		pt = orb.Point{p[0] + t*rx, p[1] + t*ry}
	}
	g.nodes[pt] = struct{}{}
	if tin {
		g.splitA[i] = append(g.splitA[i], split{t, pt})
	}
	if uin {
		g.splitB[k] = append(g.splitB[k], split{u, pt})
	}
}
