// Package bezier implements planar Bézier curves of arbitrary order.
//
// A [Curve] is defined by N control points and is a polynomial of degree
// N−1 in its parameter t ∈ [0, 1]. Curves support evaluation, derivatives,
// curvature, subdivision, flattening to polylines, roots and extrema,
// bounding boxes, intersection and self-intersection, arc length, point
// projection, order elevation and reduction, and enforcing continuity with
// another curve. A [PolyCurve] chains several curves.
//
// # Bases
//
// Internally, curves are converted from the Bernstein basis into the power
// basis, in which evaluation, differentiation and root finding are plain
// polynomial arithmetic. The matrices involved depend only on a curve's
// order and are shared through a [CoeffCache]. Root finding uses the
// eigenvalues of the companion matrix (see [SolvePolynomial]) and is exact up
// to floating point precision.
//
// # Tolerances
//
// Iterative operations take explicit tolerances. [DefaultEpsilon],
// [DefaultSmoothness] and [DefaultPrecision] suit curves whose coordinates
// are of magnitude one to a thousand. Numerical difficulties never cause
// errors; the only errors this package returns describe invalid operations
// and match [ErrInvalidOperation].
//
// # Logging
//
// Diagnostics, such as iterations that failed to converge, are logged at
// debug level to the logger set with [SetLogger]. By default, nothing is
// logged.
package bezier
