package venn

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes catalogs. Diagrams are keyed by a hash of their contents,
// so two diagrams with the same name but different curves are cached
// separately. Concurrent requests for the same diagram share one build.
type Cache struct {
	opts  CatalogOptions
	lru   *lru.Cache[uint64, *Catalog]
	group singleflight.Group
}

// NewCache returns a cache holding up to size catalogs built with opts. If
// opts is nil, DefaultCatalogOptions are used.
func NewCache(size int, opts *CatalogOptions) (*Cache, error) {
	if opts == nil {
		opts = &DefaultCatalogOptions
	}
	l, err := lru.New[uint64, *Catalog](size)
	if err != nil {
		return nil, err
	}
	return &Cache{opts: *opts, lru: l}, nil
}

// Fingerprint returns a hash identifying the catalog BuildCatalog would
// produce for d and opts. Parallelism doesn't affect the result and isn't
// part of the hash.
func Fingerprint(d Diagram, opts CatalogOptions) (uint64, error) {
	opts.Parallel = 0
	key := struct {
		Diagram Diagram
		Options CatalogOptions
	}{d, opts}
	h, err := hashstructure.Hash(key, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("venn: hashing diagram %q: %w", d.Name, err)
	}
	return h, nil
}

// Catalog returns the catalog of d, building it if it isn't cached.
// Failed builds aren't cached.
func (c *Cache) Catalog(d Diagram) (*Catalog, error) {
	key, err := Fingerprint(d, c.opts)
	if err != nil {
		return nil, err
	}
	if cat, ok := c.lru.Get(key); ok {
		return cat, nil
	}
	v, err, _ := c.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		if cat, ok := c.lru.Get(key); ok {
			return cat, nil
		}
		cat, err := BuildCatalog(d, &c.opts)
		if err != nil {
			return nil, err
		}
		c.lru.Add(key, cat)
		Logger().Debug("cached catalog", "diagram", d.Name, "key", key)
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}

// Len returns the number of cached catalogs.
func (c *Cache) Len() int { return c.lru.Len() }

// Purge drops all cached catalogs.
func (c *Cache) Purge() { c.lru.Purge() }
