package boolop

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// chain is a piece of a ring's boundary running from one node to the next.
// A ring without nodes becomes a single chain whose last point repeats its
// first.
type chain []orb.Point

func (c chain) reverse() { slices.Reverse(c) }

// longestEdge returns the index of the first point of the chain's longest
// edge.
func (c chain) longestEdge() int {
	best, bestLen := 0, -1.0
	for i := 0; i < len(c)-1; i++ {
		if l := math.Hypot(c[i+1][0]-c[i][0], c[i+1][1]-c[i][1]); l > bestLen {
			best, bestLen = i, l
		}
	}
	return best
}

// splitRings inserts the cut points recorded for each edge into the rings.
// splits is indexed like the result of edges(rs).
func splitRings(rs []ring, splits [][]split) []ring {
	out := make([]ring, 0, len(rs))
	idx := 0
	for _, r := range rs {
		pts := make(ring, 0, len(r))
		for _, p := range r {
			pts = append(pts, p)
			s := splits[idx]
			slices.SortStableFunc(s, func(a, b split) int { return cmp.Compare(a.t, b.t) })
			for _, sp := range s {
				if sp.p != pts[len(pts)-1] {
					pts = append(pts, sp.p)
				}
			}
			idx++
		}
		if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
			pts = pts[:len(pts)-1]
		}
		out = append(out, pts)
	}
	return out
}

// chains breaks rings at every node they pass through.
func chains(rs []ring, nodes map[orb.Point]struct{}) []chain {
	var out []chain
	for _, r := range rs {
		n := len(r)
		var starts []int
		for i, p := range r {
			if _, ok := nodes[p]; ok {
				starts = append(starts, i)
			}
		}
		if len(starts) == 0 {
			c := make(chain, n+1)
			copy(c, r)
			c[n] = r[0]
			out = append(out, c)
			continue
		}
		for j, s := range starts {
			e := starts[(j+1)%len(starts)]
			if e <= s {
				e += n
			}
			c := make(chain, 0, e-s+1)
			for k := s; k <= e; k++ {
				c = append(c, r[k%n])
			}
			out = append(out, c)
		}
	}
	return out
}

// classify determines where chain c lies relative to the region bounded by
// rings other, whose edges are otherEdges. The chain is probed at the
// midpoint of its longest edge.
func classify(c chain, other []ring, otherEdges []edge, eps float64) side {
	i := c.longestEdge()
	a, b := c[i], c[i+1]
	m := midpoint(a, b)
	for _, e := range otherEdges {
		if segmentDistance(m, e.p, e.q) <= eps*10 {
			dot := (b[0]-a[0])*(e.q[0]-e.p[0]) + (b[1]-a[1])*(e.q[1]-e.p[1])
			if dot > 0 {
				return same
			}
			return opposite
		}
	}
	if winding(other, m) != 0 {
		return inside
	}
	return outside
}

// link joins chains into closed rings by matching end points to start
// points. Where several chains continue from the same point, the one turning
// furthest to the left is taken. Rings with fewer than three points or an
// area within eps of zero are dropped.
func link(kept []chain, eps float64) ([]ring, error) {
	starts := make(map[orb.Point][]int)
	for i, c := range kept {
		starts[c[0]] = append(starts[c[0]], i)
	}
	used := make([]bool, len(kept))
	var out []ring
	for s := range kept {
		if used[s] {
			continue
		}
		used[s] = true
		cur := kept[s]
		first := cur[0]
		r := slices.Clone(ring(cur[:len(cur)-1]))
		for {
			end := cur[len(cur)-1]
			if end == first {
				break
			}
			prev := cur[len(cur)-2]
			dx, dy := end[0]-prev[0], end[1]-prev[1]
			next := -1
			var bestTurn float64
			for _, c := range starts[end] {
				if used[c] {
					continue
				}
				nb := kept[c][1]
				ex, ey := nb[0]-end[0], nb[1]-end[1]
				turn := math.Atan2(dx*ey-dy*ex, dx*ex+dy*ey)
				if next < 0 || turn > bestTurn {
					next, bestTurn = c, turn
				}
			}
			if next < 0 {
				return nil, fmt.Errorf("%w at %v", ErrOpenChain, end)
			}
			used[next] = true
			cur = kept[next]
			r = append(r, cur[:len(cur)-1]...)
		}
		if len(r) >= 3 && math.Abs(r.signedArea()) > eps {
			out = append(out, r)
		}
	}
	return out, nil
}
