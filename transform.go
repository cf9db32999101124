package venn

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/paulmach/orb"

	"honnef.co/go/venn/curve"
)

// Instance is one of the n curves of a diagram: the base curve rotated about
// the origin.
type Instance struct {
	Index int
	Angle s1.Angle
	Path  curve.BezPath
}

// Transform returns curve i of a diagram of n curves, which is base rotated
// by 360°·i/n about the origin. The control points of base are rotated; the
// returned path doesn't share memory with base.
func Transform(base curve.BezPath, n, i int) (Instance, error) {
	if n < 2 {
		return Instance{}, fmt.Errorf("%w: %d curves", ErrInvalidConfig, n)
	}
	if i < 0 || i >= n {
		return Instance{}, fmt.Errorf("%w: curve index %d outside [0, %d)", ErrInvalidConfig, i, n)
	}
	angle := s1.Angle(360*float64(i)/float64(n)) * s1.Degree
	return Instance{
		Index: i,
		Angle: angle,
		Path:  base.Transform(curve.Rotate(angle.Radians())),
	}, nil
}

// Instances returns all n curves of a diagram, in index order.
func Instances(base curve.BezPath, n int) ([]Instance, error) {
	out := make([]Instance, n)
	for i := range out {
		inst, err := Transform(base, n, i)
		if err != nil {
			return nil, err
		}
		out[i] = inst
	}
	return out, nil
}

// Shape is a curve instance approximated by a polygon.
type Shape struct {
	Index   int
	Polygon orb.Polygon
}

// Flatten approximates the instance by a polygon whose boundary stays within
// tolerance of the curve. The outer ring of the polygon is counter-clockwise.
func (inst Instance) Flatten(tolerance float64) (Shape, error) {
	rings := inst.Path.FlattenRings(tolerance)
	if len(rings) != 1 {
		return Shape{}, fmt.Errorf("%w: curve %d has %d subpaths", ErrInvalidConfig, inst.Index, len(rings))
	}
	pts := rings[0]
	if len(pts) < 3 {
		return Shape{}, fmt.Errorf("%w: curve %d flattens to %d points", ErrInvalidConfig, inst.Index, len(pts))
	}
	ring := make(orb.Ring, len(pts)+1)
	for i, pt := range pts {
		ring[i] = orb.Point{pt.X, pt.Y}
	}
	ring[len(pts)] = ring[0]
	if ring.Orientation() == orb.CW {
		ring.Reverse()
	}
	return Shape{Index: inst.Index, Polygon: orb.Polygon{ring}}, nil
}
