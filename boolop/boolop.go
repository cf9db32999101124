package boolop

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// DefaultEpsilon is the point equality tolerance used when Options.Epsilon
// is zero.
const DefaultEpsilon = 1e-9

// ErrOpenChain is returned when the boundary pieces selected for a result
// cannot be joined into closed rings. This happens only for numerically
// degenerate inputs.
var ErrOpenChain = errors.New("boolop: open boundary chain")

// Options configures the boolean operations.
type Options struct {
	// Epsilon is the distance below which two points are treated as
	// identical. Zero selects DefaultEpsilon.
	Epsilon float64
}

// DefaultOptions are the options used by most callers.
var DefaultOptions = Options{Epsilon: DefaultEpsilon}

func (opts Options) epsilon() float64 {
	if opts.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return opts.Epsilon
}

// Op is a boolean operation on two regions.
type Op int

const (
	OpIntersect Op = iota + 1
	OpSubtract
	OpUnion
)

func (op Op) String() string {
	switch op {
	case OpIntersect:
		return "intersect"
	case OpSubtract:
		return "subtract"
	case OpUnion:
		return "union"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// side is the position of a boundary piece relative to the other operand.
type side uint8

const (
	inside side = 1 << iota
	outside
	// On the other operand's boundary, running in the same direction.
	same
	// On the other operand's boundary, running in the opposite direction.
	opposite
)

type rule struct {
	keepA    side
	keepB    side
	reverseB bool
}

var rules = [...]rule{
	OpIntersect: {keepA: inside | same, keepB: inside},
	OpSubtract:  {keepA: outside | opposite, keepB: inside, reverseB: true},
	OpUnion:     {keepA: outside | same, keepB: outside},
}

// Intersect returns the region covered by both a and b.
func Intersect(a, b orb.MultiPolygon, opts Options) (orb.MultiPolygon, error) {
	return Apply(OpIntersect, a, b, opts)
}

// Subtract returns the region covered by a but not by b.
func Subtract(a, b orb.MultiPolygon, opts Options) (orb.MultiPolygon, error) {
	return Apply(OpSubtract, a, b, opts)
}

// Union returns the region covered by a, b or both.
func Union(a, b orb.MultiPolygon, opts Options) (orb.MultiPolygon, error) {
	return Apply(OpUnion, a, b, opts)
}

// Apply computes op on a and b. Rings of zero area are dropped from the
// result, which may therefore be empty.
func Apply(op Op, a, b orb.MultiPolygon, opts Options) (orb.MultiPolygon, error) {
	if op < OpIntersect || op > OpUnion {
		panic(fmt.Sprintf("boolop: invalid operation %d", int(op)))
	}
	eps := opts.epsilon()
	out, err := apply(op, fromMultiPolygon(a), fromMultiPolygon(b), eps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return assemble(out), nil
}

func apply(op Op, ra, rb []ring, eps float64) ([]ring, error) {
	if len(ra) == 0 {
		if op == OpUnion {
			return rb, nil
		}
		return nil, nil
	}
	if len(rb) == 0 {
		if op == OpIntersect {
			return nil, nil
		}
		return ra, nil
	}

	rb = snap(ra, rb, eps)
	ea, eb := edges(ra), edges(rb)
	g := &graph{
		eps:    eps,
		splitA: make([][]split, len(ea)),
		splitB: make([][]split, len(eb)),
		nodes:  make(map[orb.Point]struct{}),
	}
	g.intersect(ea, eb)

	// Vertices the operands share exactly are nodes as well.
	va := make(map[orb.Point]struct{})
	for _, r := range ra {
		for _, p := range r {
			va[p] = struct{}{}
		}
	}
	for _, r := range rb {
		for _, p := range r {
			if _, ok := va[p]; ok {
				g.nodes[p] = struct{}{}
			}
		}
	}

	pa := splitRings(ra, g.splitA)
	pb := splitRings(rb, g.splitB)
	rl := rules[op]
	var kept []chain
	for _, c := range chains(pa, g.nodes) {
		if rl.keepA&classify(c, rb, eb, eps) != 0 {
			kept = append(kept, c)
		}
	}
	for _, c := range chains(pb, g.nodes) {
		if rl.keepB&classify(c, ra, ea, eps) != 0 {
			if rl.reverseB {
				c.reverse()
			}
			kept = append(kept, c)
		}
	}
	return link(kept, eps)
}

// Area returns the area of a region, counting holes negatively.
func Area(mp orb.MultiPolygon) float64 {
	var sum float64
	for _, r := range fromMultiPolygon(mp) {
		sum += r.signedArea()
	}
	return math.Max(sum, 0)
}
