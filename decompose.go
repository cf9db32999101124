package venn

import (
	"fmt"

	"github.com/paulmach/orb"

	"honnef.co/go/venn/boolop"
)

// Op is an operation applied to the accumulated region polygon.
type Op int

const (
	// OpSeed starts the accumulator with a curve.
	OpSeed Op = iota
	OpIntersect
	OpSubtract
)

func (op Op) String() string {
	switch op {
	case OpSeed:
		return "seed"
	case OpIntersect:
		return "intersect"
	case OpSubtract:
		return "subtract"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Step applies Op with curve number Curve.
type Step struct {
	Op    Op
	Curve int
}

func (s Step) String() string {
	return fmt.Sprintf("%s curve %d", s.Op, s.Curve)
}

// Plan returns the steps that compute the region with membership m: the
// first included curve seeds the region, the remaining included curves are
// intersected with it in increasing order, and then the excluded curves are
// subtracted in increasing order.
func Plan(m Membership) ([]Step, error) {
	in, out := m.Included(), m.Excluded()
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: region lies outside all curves", ErrInvalidConfig)
	}
	steps := make([]Step, 0, len(m))
	steps = append(steps, Step{OpSeed, in[0]})
	for _, i := range in[1:] {
		steps = append(steps, Step{OpIntersect, i})
	}
	for _, i := range out {
		steps = append(steps, Step{OpSubtract, i})
	}
	return steps, nil
}

// DecomposeRegion computes the region of the curves with membership m by
// folding the steps of [Plan] over the curves. curves must be indexed like m.
//
// The returned polygon is never empty. A region that vanishes fails with a
// [*RegionError] wrapping [ErrEmptyRegion], naming the step at which it did.
func DecomposeRegion(curves []Shape, m Membership, opts boolop.Options) (orb.MultiPolygon, error) {
	if len(curves) != len(m) {
		return nil, fmt.Errorf("%w: %d curves for membership %s", ErrInvalidConfig, len(curves), m)
	}
	steps, err := Plan(m)
	if err != nil {
		return nil, err
	}
	var acc orb.MultiPolygon
	for _, step := range steps {
		acc, err = apply(acc, step, curves[step.Curve], opts)
		if err != nil {
			return nil, &RegionError{Index: m.Index(), Membership: m, Step: step, Err: err}
		}
		if len(acc) == 0 {
			return nil, &RegionError{Index: m.Index(), Membership: m, Step: step, Err: ErrEmptyRegion}
		}
	}
	return acc, nil
}

// apply returns the result of one step. acc is not modified.
func apply(acc orb.MultiPolygon, step Step, c Shape, opts boolop.Options) (orb.MultiPolygon, error) {
	operand := orb.MultiPolygon{c.Polygon}
	var out orb.MultiPolygon
	var err error
	switch step.Op {
	case OpSeed:
		return operand.Clone(), nil
	case OpIntersect:
		out, err = boolop.Intersect(acc, operand, opts)
	case OpSubtract:
		out, err = boolop.Subtract(acc, operand, opts)
	default:
		panic(fmt.Sprintf("venn: invalid step %s", step))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}
	return out, nil
}
