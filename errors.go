package venn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for inputs the engine refuses to work
	// with, such as fewer than two curves, a malformed base curve or a region
	// index out of range.
	ErrInvalidConfig = errors.New("venn: invalid configuration")

	// ErrDegenerate is returned when a boolean operation produces a
	// malformed result. It indicates bad input geometry or an unsuitable
	// tolerance.
	ErrDegenerate = errors.New("venn: degenerate geometry")

	// ErrEmptyRegion is returned when a region turns out to be empty. It
	// wraps ErrDegenerate.
	ErrEmptyRegion = fmt.Errorf("%w: empty region", ErrDegenerate)
)

// RegionError records the failure to decompose a single region.
type RegionError struct {
	Index      int
	Membership Membership
	// Step is the operation that failed or produced an empty result.
	Step Step
	Err  error
}

func (err *RegionError) Error() string {
	return fmt.Sprintf("region %d %s: %s: %s", err.Index, err.Membership, err.Step, err.Err)
}

func (err *RegionError) Unwrap() error { return err.Err }
