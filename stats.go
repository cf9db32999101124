package venn

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// AreaStats summarizes the areas of a catalog's regions.
type AreaStats struct {
	Count  int
	Sum    float64
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

// AreaStats summarizes the areas of the non-empty regions. Small minimums
// relative to the mean point at regions close to vanishing.
func (c *Catalog) AreaStats() (AreaStats, error) {
	var data stats.Float64Data
	for _, e := range c.Entries {
		if !e.Empty {
			data = append(data, e.Area)
		}
	}
	if len(data) == 0 {
		return AreaStats{}, fmt.Errorf("%w: catalog %q has no regions", ErrDegenerate, c.Name)
	}

	var s AreaStats
	var err error
	s.Count = data.Len()
	for _, f := range []struct {
		dst *float64
		fn  func() (float64, error)
	}{
		{&s.Sum, data.Sum},
		{&s.Min, data.Min},
		{&s.Max, data.Max},
		{&s.Mean, data.Mean},
		{&s.Median, data.Median},
		{&s.StdDev, data.StandardDeviation},
	} {
		if *f.dst, err = f.fn(); err != nil {
			return AreaStats{}, err
		}
	}
	return s, nil
}
