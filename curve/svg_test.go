package curve

import (
	"errors"
	"testing"
)

func TestParseSVG(t *testing.T) {
	tests := []struct {
		in   string
		want BezPath
	}{
		{
			"M1,2 L3,4 Z",
			BezPath{MoveTo(Pt(1, 2)), LineTo(Pt(3, 4)), ClosePath()},
		},
		{
			// implicit lineto after moveto, packed numbers
			"M0 0 1-1 2.5.5",
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, -1)), LineTo(Pt(2.5, 0.5))},
		},
		{
			"m1 1 l2 0 v2 h-2 z",
			BezPath{MoveTo(Pt(1, 1)), LineTo(Pt(3, 1)), LineTo(Pt(3, 3)), LineTo(Pt(1, 3)), ClosePath()},
		},
		{
			"M0,0 C1,1 2,1 3,0 S5,-1 6,0",
			BezPath{
				MoveTo(Pt(0, 0)),
				CubicTo(Pt(1, 1), Pt(2, 1), Pt(3, 0)),
				CubicTo(Pt(4, -1), Pt(5, -1), Pt(6, 0)),
			},
		},
		{
			"M0 0 Q1 1 2 0 T4 0",
			BezPath{
				MoveTo(Pt(0, 0)),
				QuadTo(Pt(1, 1), Pt(2, 0)),
				QuadTo(Pt(3, -1), Pt(4, 0)),
			},
		},
		{
			// drawing after closepath starts at the previous subpath's start
			"M1 1 L2 1 Z l0 1",
			BezPath{MoveTo(Pt(1, 1)), LineTo(Pt(2, 1)), ClosePath(), MoveTo(Pt(1, 1)), LineTo(Pt(1, 2))},
		},
		{
			"M -17.277 -15.676 C -17.535 -16.925 -18.118 -18.086 -18.351 -19.341 Z",
			BezPath{
				MoveTo(Pt(-17.277, -15.676)),
				CubicTo(Pt(-17.535, -16.925), Pt(-18.118, -18.086), Pt(-18.351, -19.341)),
				ClosePath(),
			},
		},
		{
			"M1e2,-2E-1",
			BezPath{MoveTo(Pt(100, -0.2))},
		},
	}
	for _, tt := range tests {
		got, err := ParseSVG(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", tt.in, err)
			continue
		}
		diff(t, tt.want, got)
	}
}

func TestParseSVGErrors(t *testing.T) {
	for _, in := range []string{
		"L1 1",
		"1 1",
		"M1",
		"M1 1 Z 2",
		"M0 0 A1 1 0 0 1 2 2",
		"M0 0 X",
		"M0 0 L.",
	} {
		_, err := ParseSVG(in)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("%q: got error %v, want a *SyntaxError", in, err)
		}
	}
}

func TestSVGRoundTrip(t *testing.T) {
	p := Circle{Center: Pt(0.25, -1), Radius: 2}.Path()
	p = append(p, square(0, 0, 1, 1)...)
	s := SVG(p.Elements(), SVGOptions{})
	got, err := ParseSVG(s)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, p, got)
}

func TestSVGPrecision(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(1.23456, -0.00001))
	p.LineTo(Pt(10, 2.5))
	p.ClosePath()
	got := SVG(p.Elements(), SVGOptions{MaxPrecision: 3})
	if want := "M1.235,0 L10,2.5 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
