package venn

import (
	"testing"

	"github.com/paulmach/orb"

	"honnef.co/go/venn/curve"
)

func TestSerializePath(t *testing.T) {
	mp := orb.MultiPolygon{
		{
			{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
			{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {1, 1}},
		},
		{
			{{10, 0}, {11, 0}, {10.5, 0.333333333}, {10, 0}},
		},
	}
	got := SerializePath(mp, curve.SVGOptions{MaxPrecision: 3})
	want := "M0,0 L4,0 L4,4 L0,4 Z M1,1 L1,2 L2,2 L2,1 Z M10,0 L11,0 L10.5,0.333 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	area, err := PathArea(got)
	if err != nil {
		t.Fatal(err)
	}
	// The hole is subtracted.
	assertClose(t, "area", area, 16-1+0.5*0.333, 1e-12)

	if got := SerializePath(nil, curve.SVGOptions{}); got != "" {
		t.Errorf("empty polygon serialized to %q", got)
	}
}

func TestPolygonPathOpenRings(t *testing.T) {
	// Rings without the closing point are accepted as well.
	mp := orb.MultiPolygon{{{{0, 0}, {1, 0}, {0, 1}}}}
	var want curve.BezPath
	want.MoveTo(curve.Pt(0, 0))
	want.LineTo(curve.Pt(1, 0))
	want.LineTo(curve.Pt(0, 1))
	want.ClosePath()
	diff(t, want, PolygonPath(mp))
}

func TestPathAreaInvalid(t *testing.T) {
	if _, err := PathArea("M0,0 L1"); err == nil {
		t.Error("expected error")
	}
}
