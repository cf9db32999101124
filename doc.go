// Package venn decomposes symmetric Venn diagrams into their regions.
//
// A diagram consists of n copies of one closed base curve, copy i rotated by
// 360°·i/n about the origin. Every non-empty combination of the curves'
// interiors forms a region, identified by an index in [1, 2^n−1] whose bit i
// is set when the region lies inside curve i. Bit 0 is the least significant
// bit and always corresponds to curve 0, the unrotated base curve.
//
// [BuildCatalog] computes all 2^n−1 regions of a [Diagram]: it flattens the
// rotated curves into polygons, derives each region by intersecting the
// curves it lies inside and subtracting, in increasing index order, the
// curves it lies outside of, and serializes the result as SVG path data.
// The computation is deterministic. Building the same diagram with the same
// options twice yields byte-identical paths, regardless of parallelism.
//
// The package logs nothing by default; see [SetLogger].
package venn
