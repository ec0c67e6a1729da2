// Package curve provides the 2D geometry used by the Lissajous renderer:
// points and vectors, sizes and rectangles, affine transforms, and paths made
// of lines and Bézier curves.
//
// # Coordinate system
//
// All types assume the screen convention of a y-down coordinate system with
// the origin in the top-left corner, matching image.Image. A positive
// [Vec2.Cross] thus means a clockwise turn on screen.
//
// # Paths
//
// [BezPath] represents a path as a slice of [PathElement] values, akin to the
// drawing commands of graphics APIs like PostScript: [MoveTo] starts a
// subpath, [LineTo], [QuadTo] and [CubicTo] draw from the current point, and
// [ClosePath] closes the subpath.
//
// Functions that don't need random access accept and return iter.Seq values
// instead of slices, so that paths can be streamed from producer to consumer
// without allocating. Use [slices.Collect] to turn such an iterator into a
// [BezPath], and [BezPath.Elements] to go the other way.
//
// # Flattening
//
// [Flatten] approximates quadratic and cubic Béziers with lines. Quadratic
// segments are subdivided using the method described in [Flattening quadratic
// Béziers] by Raph Levien, which yields close to the minimum number of lines
// for a given tolerance.
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
package curve
