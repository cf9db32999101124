package venn

import (
	"fmt"
	"math"

	"honnef.co/go/venn/boolop"
	"honnef.co/go/venn/curve"
)

// MaxCurves is the largest number of curves a diagram may have.
const MaxCurves = 16

// Diagram describes a symmetric Venn diagram: N copies of Curve, rotated
// about the origin.
type Diagram struct {
	Name  string
	N     int
	Curve curve.BezPath
}

// Validate checks that the diagram can be decomposed: it must have between 2
// and MaxCurves curves, and the base curve must be a single closed, finite
// and simple path enclosing a non-zero area. Simplicity is checked on the
// curve as flattened with the default tolerance.
func (d Diagram) Validate() error {
	return d.validate(DefaultCatalogOptions.Tolerance)
}

func (d Diagram) validate(tolerance float64) error {
	if d.N < 2 || d.N > MaxCurves {
		return fmt.Errorf("%w: diagram %q has %d curves, need 2 to %d", ErrInvalidConfig, d.Name, d.N, MaxCurves)
	}
	if !(tolerance > 0) {
		return fmt.Errorf("%w: flattening tolerance %g", ErrInvalidConfig, tolerance)
	}
	p := d.Curve
	switch {
	case len(p) == 0 || p[0].Kind != curve.MoveToKind:
		return fmt.Errorf("%w: curve of %q doesn't start with a moveto", ErrInvalidConfig, d.Name)
	case p.Subpaths() != 1:
		return fmt.Errorf("%w: curve of %q has %d subpaths", ErrInvalidConfig, d.Name, p.Subpaths())
	case p.IsNaN() || p.IsInf():
		return fmt.Errorf("%w: curve of %q has non-finite coordinates", ErrInvalidConfig, d.Name)
	case !p.Closed():
		return fmt.Errorf("%w: curve of %q isn't closed", ErrInvalidConfig, d.Name)
	}
	if a := p.SignedArea(); math.Abs(a) <= boolop.DefaultEpsilon {
		return fmt.Errorf("%w: curve of %q encloses no area", ErrInvalidConfig, d.Name)
	}
	shape, err := Instance{Path: p}.Flatten(tolerance)
	if err != nil {
		return err
	}
	if boolop.SelfIntersects(shape.Polygon[0], boolop.DefaultOptions) {
		return fmt.Errorf("%w: curve of %q intersects itself", ErrInvalidConfig, d.Name)
	}
	return nil
}

// Shapes returns the diagram's curves, rotated and flattened with the given
// tolerance.
func (d Diagram) Shapes(tolerance float64) ([]Shape, error) {
	insts, err := Instances(d.Curve, d.N)
	if err != nil {
		return nil, err
	}
	shapes := make([]Shape, len(insts))
	for i, inst := range insts {
		if shapes[i], err = inst.Flatten(tolerance); err != nil {
			return nil, err
		}
		Logger().Debug("curve", "diagram", d.Name, "index", inst.Index, "angle", inst.Angle, "points", len(shapes[i].Polygon[0])-1)
	}
	return shapes, nil
}
