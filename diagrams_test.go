package venn_test

import (
	"math"
	"runtime"
	"testing"

	"github.com/paulmach/orb"

	"honnef.co/go/venn"
	"honnef.co/go/venn/boolop"
	"honnef.co/go/venn/descriptor"
)

func loadDiagram(t *testing.T, key string) venn.Diagram {
	t.Helper()
	c, err := descriptor.Load("testdata/diagrams.json")
	if err != nil {
		t.Fatal(err)
	}
	desc, ok := c.Lookup(key)
	if !ok {
		t.Fatalf("no diagram %q", key)
	}
	d, err := desc.Diagram()
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func buildCatalog(t *testing.T, d venn.Diagram) *venn.Catalog {
	t.Helper()
	opts := venn.DefaultCatalogOptions
	opts.Parallel = runtime.GOMAXPROCS(0)
	cat, err := venn.BuildCatalog(d, &opts)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestVictoria(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 7-curve diagram in short mode")
	}
	d := loadDiagram(t, "victoria")
	cat := buildCatalog(t, d)
	if cat.Len() != 127 {
		t.Fatalf("got %d entries, want 127", cat.Len())
	}
	for i, e := range cat.Entries {
		if e.Index != i+1 {
			t.Errorf("entry %d has index %d", i+1, e.Index)
		}
		if e.Empty || e.Path == "" || e.Area <= 0 {
			t.Errorf("region %d is empty", e.Index)
		}
	}

	e, ok := cat.Entry(64)
	if !ok {
		t.Fatal("no entry 64")
	}
	if got := e.Membership.String(); got != "[0,0,0,0,0,0,1]" {
		t.Errorf("region 64 has membership %s", got)
	}
	if e.Popcount != 1 {
		t.Errorf("region 64 has popcount %d", e.Popcount)
	}
	if e, _ := cat.Entry(1); e.Popcount != 1 {
		t.Errorf("region 1 has popcount %d", e.Popcount)
	}
	if e, _ := cat.Entry(127); e.Popcount != 7 {
		t.Errorf("region 127 has popcount %d", e.Popcount)
	}

	shapes, err := d.Shapes(venn.DefaultCatalogOptions.Tolerance)
	if err != nil {
		t.Fatal(err)
	}
	checkTiling(t, cat, shapes)

	// Region 64 lies inside curve 6 and no other.
	for i, s := range shapes {
		in, err := boolop.Intersect(e.Polygon, orb.MultiPolygon{s.Polygon}, boolop.DefaultOptions)
		if err != nil {
			t.Fatal(err)
		}
		want := 0.0
		if i == 6 {
			want = e.Area
		}
		if got := boolop.Area(in); math.Abs(got-want) > 1e-6 {
			t.Errorf("area of region 64 inside curve %d: got %g, want %g", i, got, want)
		}
	}
}

func TestAllDiagrams(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 7-curve diagrams in short mode")
	}
	c, err := descriptor.Load("testdata/diagrams.json")
	if err != nil {
		t.Fatal(err)
	}
	ds, err := c.Diagrams()
	if err != nil {
		t.Fatal(err)
	}
	for _, d := range ds {
		t.Run(d.Name, func(t *testing.T) {
			cat := buildCatalog(t, d)
			if want := 1<<d.N - 1; cat.Len() != want {
				t.Fatalf("got %d entries, want %d", cat.Len(), want)
			}
			if empty := cat.EmptyRegions(); len(empty) != 0 {
				t.Errorf("empty regions %v", empty)
			}
			shapes, err := d.Shapes(venn.DefaultCatalogOptions.Tolerance)
			if err != nil {
				t.Fatal(err)
			}
			checkTiling(t, cat, shapes)
			for _, e := range cat.Entries {
				area, err := venn.PathArea(e.Path)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(area-e.Area) > 1e-3 {
					t.Errorf("region %d: path encloses %g, polygon %g", e.Index, area, e.Area)
				}
			}
		})
	}
}

func TestFiveVennDeterministic(t *testing.T) {
	d := loadDiagram(t, "5")
	a := buildCatalog(t, d)
	b, err := venn.BuildCatalog(d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 31 || b.Len() != 31 {
		t.Fatalf("got %d and %d entries, want 31", a.Len(), b.Len())
	}
	pa, pb := a.Paths(), b.Paths()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Errorf("path %d differs between parallel and sequential builds", i)
		}
	}
	for k := 1; k <= 5; k++ {
		if got, want := len(a.ByPopcount(k)), binomial(5, k); got != want {
			t.Errorf("%d regions inside %d curves, want %d", got, k, want)
		}
	}
}

func binomial(n, k int) int {
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}
	return out
}

// checkTiling verifies the partition law: the regions inside curve i add up
// to the area of curve i, and all regions add up to the union of the curves.
func checkTiling(t *testing.T, cat *venn.Catalog, shapes []venn.Shape) {
	t.Helper()
	perCurve := make([]float64, len(shapes))
	var total float64
	for _, e := range cat.Entries {
		total += e.Area
		for _, i := range e.Membership.Included() {
			perCurve[i] += e.Area
		}
	}
	var union orb.MultiPolygon
	for i, s := range shapes {
		mp := orb.MultiPolygon{s.Polygon}
		if want := boolop.Area(mp); math.Abs(perCurve[i]-want) > 1e-6 {
			t.Errorf("regions inside curve %d cover %g, curve covers %g", i, perCurve[i], want)
		}
		var err error
		if union, err = boolop.Union(union, mp, boolop.DefaultOptions); err != nil {
			t.Fatal(err)
		}
	}
	if want := boolop.Area(union); math.Abs(total-want) > 1e-6 {
		t.Errorf("regions cover %g, union of curves covers %g", total, want)
	}
}
