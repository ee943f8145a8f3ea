// Package grazil provides a 2D vector-path engine: paths built from straight
// and cubic Bézier segments, plus the algorithms to transform, reverse,
// bound, intersect, cut, pad, and extend such paths with circular arcs.
//
// # Paths
//
// [Path] is the central type. It holds an ordered sequence of path elements
// ([PathElement]), each a command from the closed set moveto, lineto,
// curveto, closepath together with its operands. A path contains zero or
// more subpaths; a subpath starts at a moveto and may be closed by a
// closepath, which draws a straight segment back to the subpath's start.
//
// Operands are usually concrete points, but they may also be deferred: a
// [Provider] is a zero-argument function that yields the point on demand.
// Deferred operands let callers build paths whose geometry is not known yet;
// they are replaced by their concrete value with [Path.MakeRigid].
//
// # Geometry primitives
//
// [Point] and [Vec2] are plain float64 value types for positions and
// displacements. [Affine] is an affine transform with forward application
// and checked inversion. [CubicBez] provides cubic Bézier evaluation,
// tangents, de Casteljau splitting, and control-point reconstruction from
// sampled points.
//
// # Tolerances
//
// The engine uses floating-point arithmetic with a fixed tolerance; see
// [Epsilon]. Near-degenerate configurations (parallel lines, vanishing
// determinants) are resolved by documented fallbacks rather than errors.
// Genuine caller errors surface as [MalformedPathError] (invalid path
// construction) or [GeometryError] (unrepresentable geometry).
//
// # Rendering
//
// [Path.String] serializes a path to a line-drawing mini-language:
//
//	(0, 0) -- (10, 0) .. controls (12, 2) and (14, 6) .. (14, 10) -- cycle
//
// Tokens are space-separated; points render via their own string form.
package grazil
