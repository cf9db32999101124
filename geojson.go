package venn

import (
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection exports the catalog's regions as GeoJSON features, one
// per non-empty region, in index order. Each feature carries the region's
// index, membership, popcount and area as properties.
func (c *Catalog) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range c.Entries {
		if e.Empty {
			continue
		}
		f := geojson.NewFeature(e.Polygon)
		f.ID = e.Index
		f.Properties["diagram"] = c.Name
		f.Properties["index"] = e.Index
		f.Properties["membership"] = e.Membership.String()
		f.Properties["popcount"] = e.Popcount
		f.Properties["area"] = e.Area
		fc.Append(f)
	}
	return fc
}
