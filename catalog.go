package venn

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/venn/boolop"
	"honnef.co/go/venn/curve"
)

// CatalogOptions configures [BuildCatalog].
type CatalogOptions struct {
	// Tolerance is the maximum distance between a curve and the polygon
	// approximating it.
	Tolerance float64
	// Epsilon is the distance below which the boolean operations treat
	// points as identical. Zero selects boolop.DefaultEpsilon.
	Epsilon float64
	// Parallel is the number of regions computed concurrently. Values below
	// 2 compute regions one after the other.
	Parallel int
	// AllowEmpty records empty regions as entries marked Empty instead of
	// failing the whole catalog.
	AllowEmpty bool
	// Simplify, if positive, is the Douglas-Peucker threshold with which
	// region polygons are simplified before serialization.
	Simplify float64
	// Precision is the maximum number of decimals written per coordinate.
	// Zero writes coordinates with full precision.
	Precision int
}

// DefaultCatalogOptions are the options used when none are given.
var DefaultCatalogOptions = CatalogOptions{
	Tolerance: 0.02,
	Epsilon:   boolop.DefaultEpsilon,
	Parallel:  1,
	Precision: 5,
}

// Entry is a single region of a diagram.
type Entry struct {
	Index      int
	Membership Membership
	Popcount   int
	// Path is the region's boundary as SVG path data. It is empty if and
	// only if Empty is set.
	Path    string
	Area    float64
	Polygon orb.MultiPolygon
	// Empty marks a region that vanished. Such entries only exist in
	// catalogs built with AllowEmpty.
	Empty bool
}

// Catalog holds all regions of a diagram.
type Catalog struct {
	Name string
	N    int
	// Entries holds the regions ordered by index, starting at index 1.
	Entries []Entry
}

// BuildCatalog computes all 2^n−1 regions of d. If opts is nil,
// DefaultCatalogOptions are used.
//
// Either every region is computed or BuildCatalog fails; no partial catalog
// is returned.
func BuildCatalog(d Diagram, opts *CatalogOptions) (*Catalog, error) {
	if opts == nil {
		opts = &DefaultCatalogOptions
	}
	if err := d.validate(opts.Tolerance); err != nil {
		return nil, err
	}
	start := time.Now()
	shapes, err := d.Shapes(opts.Tolerance)
	if err != nil {
		return nil, err
	}

	total := 1<<d.N - 1
	entries := make([]Entry, total)
	if opts.Parallel < 2 {
		for index := 1; index <= total; index++ {
			if entries[index-1], err = buildEntry(shapes, index, opts); err != nil {
				return nil, fmt.Errorf("diagram %q: %w", d.Name, err)
			}
		}
	} else {
		g, ctx := errgroup.WithContext(context.Background())
		g.SetLimit(opts.Parallel)
		for index := 1; index <= total; index++ {
			g.Go(func() error {
				if ctx.Err() != nil {
					return nil
				}
				e, err := buildEntry(shapes, index, opts)
				if err != nil {
					return err
				}
				entries[index-1] = e
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("diagram %q: %w", d.Name, err)
		}
	}

	Logger().Info("built catalog", "diagram", d.Name, "regions", total, "elapsed", time.Since(start))
	return &Catalog{Name: d.Name, N: d.N, Entries: entries}, nil
}

func buildEntry(shapes []Shape, index int, opts *CatalogOptions) (Entry, error) {
	m, err := MembershipOf(index, len(shapes))
	if err != nil {
		return Entry{}, err
	}
	e := Entry{Index: index, Membership: m, Popcount: m.Popcount()}
	mp, err := DecomposeRegion(shapes, m, boolop.Options{Epsilon: opts.Epsilon})
	if err == nil && opts.Simplify > 0 {
		mp = simplify.DouglasPeucker(opts.Simplify).MultiPolygon(mp)
		if len(mp) == 0 {
			err = &RegionError{Index: index, Membership: m, Step: Step{OpSeed, m.Included()[0]}, Err: ErrEmptyRegion}
		}
	}
	if err != nil {
		if opts.AllowEmpty && errors.Is(err, ErrEmptyRegion) {
			Logger().Warn("empty region", "index", index, "membership", m, "err", err)
			e.Empty = true
			return e, nil
		}
		return Entry{}, err
	}

	e.Polygon = mp
	e.Area = planar.Area(mp)
	e.Path = SerializePath(mp, curve.SVGOptions{MaxPrecision: opts.Precision})
	Logger().Debug("region", "index", index, "membership", m, "polygons", len(mp), "area", e.Area)
	return e, nil
}

// Len returns the number of entries, which is 2^n−1.
func (c *Catalog) Len() int { return len(c.Entries) }

// Entry returns the region with the given index.
func (c *Catalog) Entry(index int) (Entry, bool) {
	if index < 1 || index > len(c.Entries) {
		return Entry{}, false
	}
	return c.Entries[index-1], true
}

// All returns an iterator over the entries, keyed by region index.
func (c *Catalog) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for _, e := range c.Entries {
			if !yield(e.Index, e) {
				return
			}
		}
	}
}

// Paths returns the path data of all regions, indexed by region index.
// Element 0, the area outside all curves, is always empty.
func (c *Catalog) Paths() []string {
	out := make([]string, len(c.Entries)+1)
	for _, e := range c.Entries {
		out[e.Index] = e.Path
	}
	return out
}

// ByPopcount returns the regions lying inside exactly k curves, in index
// order.
func (c *Catalog) ByPopcount(k int) []Entry {
	var out []Entry
	for _, e := range c.Entries {
		if e.Popcount == k {
			out = append(out, e)
		}
	}
	return out
}

// EmptyRegions returns the indices of regions marked Empty.
func (c *Catalog) EmptyRegions() []int {
	var out []int
	for _, e := range c.Entries {
		if e.Empty {
			out = append(out, e.Index)
		}
	}
	return out
}
