// Package boolop implements boolean operations on polygonal regions.
//
// Regions are represented as [orb.MultiPolygon] values in the plane. Outer
// rings are counter-clockwise and holes clockwise; inputs with the opposite
// orientation are normalized before use. Results are always returned with
// closed rings, as is customary for orb geometries.
//
// The operations work by cutting the boundaries of both operands at their
// mutual intersections, classifying each resulting piece as lying inside,
// outside or on the boundary of the other operand, and joining the pieces
// selected by the operation into new rings. Points closer together than the
// configured epsilon are considered equal. The same inputs always produce the
// same output, down to the order of rings and their starting vertices.
package boolop
