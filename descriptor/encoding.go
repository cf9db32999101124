package descriptor

import (
	"fmt"
	"strings"

	"honnef.co/go/venn"
)

// ErrInvalidEncoding is returned for matrix encodings that don't describe a
// simple symmetric monotone Venn diagram. It wraps venn.ErrInvalidConfig.
var ErrInvalidEncoding = fmt.Errorf("%w: invalid matrix encoding", venn.ErrInvalidConfig)

// Encoding is the matrix encoding of a simple symmetric monotone Venn
// diagram of n curves. It has n−1 rows of equal length made of the digits 0
// and 1. A 1 in row r and column c means that the curves on rows r and r+1
// (counting from 1) swap places in column c.
//
// The encoding describes one n-th of the diagram; the rest follows by
// symmetry.
type Encoding []string

// ParseEncoding parses the whitespace-separated rows of a matrix encoding.
func ParseEncoding(s string) Encoding {
	return Encoding(strings.Fields(s))
}

// Swaps returns the row swaps in column order. Within a column, swaps are
// ordered from the top row down.
func (e Encoding) Swaps() ([]int, error) {
	if len(e) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidEncoding)
	}
	width := len(e[0])
	for r, row := range e {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidEncoding, r+1, len(row), width)
		}
		if strings.Trim(row, "01") != "" {
			return nil, fmt.Errorf("%w: row %d contains characters other than 0 and 1", ErrInvalidEncoding, r+1)
		}
	}
	var swaps []int
	for c := 0; c < width; c++ {
		for r, row := range e {
			if row[c] == '1' {
				swaps = append(swaps, r+1)
			}
		}
	}
	return swaps, nil
}

// Validate checks that the encoding describes a Venn diagram of n curves.
//
// The basic checks require (2^n−2)/n swaps in total, no swap directly
// repeating the previous one (cyclically), and C(n,k)/n swaps on each row k.
// The final check traces the permutation of curves through n repetitions of
// the swaps and requires every proper non-empty subset of curves to be
// reached exactly once.
func (e Encoding) Validate(n int) error {
	if n < 2 || n > venn.MaxCurves {
		return fmt.Errorf("%w: %d curves", ErrInvalidEncoding, n)
	}
	if len(e) != n-1 {
		return fmt.Errorf("%w: %d rows for %d curves", ErrInvalidEncoding, len(e), n)
	}
	swaps, err := e.Swaps()
	if err != nil {
		return err
	}

	if want := (1<<n - 2) / n; len(swaps) != want {
		return fmt.Errorf("%w: %d swaps, want %d", ErrInvalidEncoding, len(swaps), want)
	}
	last := swaps[len(swaps)-1]
	for i, s := range swaps {
		if s == last {
			return fmt.Errorf("%w: swap %d repeats row %d", ErrInvalidEncoding, i+1, s)
		}
		last = s
	}
	for k := 1; k < n-1; k++ {
		want := binomial(n, k) / n
		got := 0
		for _, s := range swaps {
			if s == k {
				got++
			}
		}
		if got != want {
			return fmt.Errorf("%w: %d swaps on row %d, want %d", ErrInvalidEncoding, got, k, want)
		}
	}

	return checkRanks(n, swaps)
}

// checkRanks follows the order of curves from top to bottom through the
// swaps. After each swap at row s, the curves below row s form the subset
// of curves containing the newly crossed region.
func checkRanks(n int, swaps []int) error {
	seen := make([]bool, 1<<n)
	seen[0], seen[len(seen)-1] = true, true
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for range n {
		for _, s := range swaps {
			perm[s], perm[s-1] = perm[s-1], perm[s]
			rank := 0
			for _, c := range perm[s:] {
				rank |= 1 << c
			}
			if seen[rank] {
				return fmt.Errorf("%w: duplicate rank %d", ErrInvalidEncoding, rank)
			}
			seen[rank] = true
		}
	}
	for rank, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: rank %d not represented", ErrInvalidEncoding, rank)
		}
	}
	return nil
}

func binomial(n, k int) int {
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}
	return out
}
