package venn

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"honnef.co/go/venn/boolop"
	"honnef.co/go/venn/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertClose(t *testing.T, what string, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s: got %g, want %g (±%g)", what, got, want, epsilon)
	}
}

func mask(s string) Membership {
	m := make(Membership, len(s))
	for i := range s {
		m[i] = s[i] == '1'
	}
	return m
}

func rectPath(x0, y0, x1, y1 float64) curve.BezPath {
	var p curve.BezPath
	p.MoveTo(curve.Pt(x0, y0))
	p.LineTo(curve.Pt(x1, y0))
	p.LineTo(curve.Pt(x1, y1))
	p.LineTo(curve.Pt(x0, y1))
	p.ClosePath()
	return p
}

func rectShape(i int, x0, y0, x1, y1 float64) Shape {
	return Shape{
		Index:   i,
		Polygon: orb.Polygon{{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}},
	}
}

func circles(n int, offset float64) Diagram {
	return Diagram{
		Name:  "circles",
		N:     n,
		Curve: curve.Circle{Center: curve.Pt(offset, 0), Radius: 1}.Path(),
	}
}

// unionArea returns the area covered by any of the shapes.
func unionArea(t *testing.T, shapes []Shape) float64 {
	t.Helper()
	var u orb.MultiPolygon
	for _, s := range shapes {
		var err error
		u, err = boolop.Union(u, orb.MultiPolygon{s.Polygon}, boolop.DefaultOptions)
		if err != nil {
			t.Fatal(err)
		}
	}
	return boolop.Area(u)
}

// checkPartition verifies that the regions of cat tile the curves: the
// regions inside curve i add up to the curve's area, all regions add up to
// the union of the curves, and every region lies inside exactly the curves
// its membership names.
func checkPartition(t *testing.T, cat *Catalog, shapes []Shape, epsilon float64) {
	t.Helper()
	var total float64
	perCurve := make([]float64, len(shapes))
	for _, e := range cat.Entries {
		total += e.Area
		for i, in := range e.Membership {
			if in {
				perCurve[i] += e.Area
			}
		}
	}
	for i, s := range shapes {
		assertClose(t, "area of regions inside curve", perCurve[i], boolop.Area(orb.MultiPolygon{s.Polygon}), epsilon)
	}
	assertClose(t, "area of all regions", total, unionArea(t, shapes), epsilon)
}

// checkMembership verifies that the region of e lies inside the curves its
// membership includes and outside the others.
func checkMembership(t *testing.T, e Entry, shapes []Shape, epsilon float64) {
	t.Helper()
	for i, s := range shapes {
		in, err := boolop.Intersect(e.Polygon, orb.MultiPolygon{s.Polygon}, boolop.DefaultOptions)
		if err != nil {
			t.Fatal(err)
		}
		want := 0.0
		if e.Membership[i] {
			want = e.Area
		}
		if got := boolop.Area(in); math.Abs(got-want) > epsilon {
			t.Errorf("region %d %s: area inside curve %d is %g, want %g", e.Index, e.Membership, i, got, want)
		}
	}
}

// checkDisjoint verifies that no two regions of cat overlap.
func checkDisjoint(t *testing.T, cat *Catalog, epsilon float64) {
	t.Helper()
	for i, a := range cat.Entries {
		for _, b := range cat.Entries[i+1:] {
			in, err := boolop.Intersect(a.Polygon, b.Polygon, boolop.DefaultOptions)
			if err != nil {
				t.Fatalf("regions %d and %d: %s", a.Index, b.Index, err)
			}
			if area := boolop.Area(in); area > epsilon {
				t.Errorf("regions %d and %d overlap by %g", a.Index, b.Index, area)
			}
		}
	}
}
