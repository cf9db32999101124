package venn

import (
	"fmt"

	"github.com/paulmach/orb"

	"honnef.co/go/venn/curve"
)

// PolygonPath converts a polygon into a path with one closed subpath per
// ring. Holes keep their orientation, opposite to that of the outer rings.
func PolygonPath(mp orb.MultiPolygon) curve.BezPath {
	var p curve.BezPath
	for _, poly := range mp {
		for _, r := range poly {
			if r.Closed() {
				r = r[:len(r)-1]
			}
			if len(r) == 0 {
				continue
			}
			p.MoveTo(curve.Pt(r[0][0], r[0][1]))
			for _, pt := range r[1:] {
				p.LineTo(curve.Pt(pt[0], pt[1]))
			}
			p.ClosePath()
		}
	}
	return p
}

// SerializePath formats a polygon as SVG path data made of absolute moveto,
// lineto and closepath commands. Because holes run opposite to outer rings,
// the path renders correctly with both the nonzero and the evenodd fill
// rule. The output depends only on mp and opts.
func SerializePath(mp orb.MultiPolygon, opts curve.SVGOptions) string {
	return curve.SVG(PolygonPath(mp).Elements(), opts)
}

// PathArea parses SVG path data and returns the signed area it encloses.
func PathArea(s string) (float64, error) {
	p, err := curve.ParseSVG(s)
	if err != nil {
		return 0, fmt.Errorf("venn: %w", err)
	}
	return p.SignedArea(), nil
}
