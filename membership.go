package venn

import (
	"fmt"
	"math/bits"
	"strings"
)

// Membership records, for each curve of a diagram, whether a region lies
// inside it. Element i corresponds to curve i and to bit i of the region
// index.
type Membership []bool

// MembershipOf returns the membership of the region with the given index in
// a diagram of n curves.
func MembershipOf(index, n int) (Membership, error) {
	if n < 2 || n > MaxCurves {
		return nil, fmt.Errorf("%w: %d curves", ErrInvalidConfig, n)
	}
	if index < 1 || index > 1<<n-1 {
		return nil, fmt.Errorf("%w: region index %d outside [1, %d]", ErrInvalidConfig, index, 1<<n-1)
	}
	m := make(Membership, n)
	for i := range m {
		m[i] = index%2 == 1
		index /= 2
	}
	return m, nil
}

// Index returns the region index the membership describes.
func (m Membership) Index() int {
	index := 0
	for i, in := range m {
		if in {
			index += 1 << i
		}
	}
	return index
}

// Popcount returns the number of curves the region lies inside.
func (m Membership) Popcount() int {
	n := 0
	for _, in := range m {
		if in {
			n++
		}
	}
	return n
}

// Popcount returns the number of set bits in a region index, which is the
// number of curves the region lies inside.
func Popcount(index int) int {
	return bits.OnesCount(uint(index))
}

// Included returns the indices of the curves the region lies inside, in
// increasing order.
func (m Membership) Included() []int { return m.curves(true) }

// Excluded returns the indices of the curves the region lies outside of, in
// increasing order.
func (m Membership) Excluded() []int { return m.curves(false) }

func (m Membership) curves(in bool) []int {
	var out []int
	for i, b := range m {
		if b == in {
			out = append(out, i)
		}
	}
	return out
}

// String formats the membership as a vector of bits, curve 0 first, as in
// "[1,0,1]".
func (m Membership) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, in := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		if in {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
