// Package curve provides the small set of 2D primitives the Venn engine needs
// to describe and manipulate its input curves: points and vectors, affine
// transformations, cubic Béziers, and Bézier paths.
//
// # Bézier paths
//
// [BezPath] represents a path as a slice of [PathElement] values. Path
// elements are akin to drawing commands in PostScript or SVG: [MoveTo] starts
// a new subpath, [LineTo], [QuadTo] and [CubicTo] draw from the current point,
// and [ClosePath] closes the current subpath. Paths can be transformed with an
// [Affine], measured with [BezPath.SignedArea], and flattened to polylines
// with [BezPath.FlattenRings].
//
// # SVG path data
//
// [SVG] and [WriteSVG] convert a sequence of path elements to SVG path data,
// and [ParseSVG] converts SVG path data back into a [BezPath]. The parser
// accepts absolute and relative commands, including the shorthand forms (H,
// V, S and T), and implicit command repetition. Elliptical arcs are not
// supported.
//
// # Signed area
//
// Signed areas are computed exactly per segment using [Green's theorem]. A
// counter-clockwise subpath in a y-up coordinate system has positive area.
//
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
package curve
