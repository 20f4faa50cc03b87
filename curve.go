package bezier

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon is a default tolerance for [Curve.Intersection] and
// [Curve.IterateByLength]. It is suitable for geometry measured in units
// of roughly one, such as normalized coordinates or millimeters.
const DefaultEpsilon = 1e-3

// DefaultSmoothness and DefaultPrecision are default tolerances for
// [Curve.Polyline].
const (
	DefaultSmoothness = 1.0001
	DefaultPrecision  = 1e-3
)

// MaxIterations bounds every Newton and Halley iteration in this package.
const MaxIterations = 100

// Curve is a planar Bézier curve of arbitrary order, defined by its control
// points.
//
// A curve with N control points has order N and degree N−1. The curve starts
// at the first and ends at the last control point; for N = 1 it degenerates
// to a single point.
//
// Curves lazily compute and remember derived data such as their derivative,
// roots and bounding boxes. Every mutating method discards all of it at once.
// A Curve is not safe for concurrent use if any goroutine mutates it.
type Curve struct {
	cc     *CoeffCache
	points []Point
	cache  curveCache
}

// curveCache holds the lazily computed data of a curve. Resetting it to its
// zero value invalidates everything.
type curveCache struct {
	power          option[[]Vec2]
	derivative     option[*Curve]
	roots          option[[]float64]
	extrema        option[[]float64]
	tightBox       option[Rect]
	relaxedBox     option[Rect]
	polyline       option[[]Point]
	polylineParams [2]float64
	projection     option[projectionPoly]
}

// NewCurve returns a curve with the given control points, which are copied.
//
// Coefficient matrices are shared through cc. If cc is nil, a package-wide
// cache is used.
//
// NewCurve panics if no points are given.
func NewCurve(cc *CoeffCache, pts ...Point) *Curve {
	if len(pts) == 0 {
		panic("bezier: curve needs at least one control point")
	}
	if cc == nil {
		cc = defaultCoeffs()
	}
	return &Curve{
		cc:     cc,
		points: slices.Clone(pts),
	}
}

// NewCurveFromMatrix returns a curve whose control points are the rows of
// the N×2 matrix m.
//
// NewCurveFromMatrix panics if m doesn't have exactly two columns.
func NewCurveFromMatrix(cc *CoeffCache, m mat.Matrix) *Curve {
	if _, c := m.Dims(); c != 2 {
		panic(fmt.Sprintf("bezier: control point matrix must have 2 columns, has %d", c))
	}
	return NewCurve(cc, densePoints(m)...)
}

func (c *Curve) resetCache() {
	c.cache = curveCache{}
}

// Clone returns an independent copy of c.
func (c *Curve) Clone() *Curve {
	return &Curve{
		cc:     c.cc,
		points: slices.Clone(c.points),
	}
}

// Order returns the number of control points.
func (c *Curve) Order() int {
	return len(c.points)
}

// Degree returns the degree of the curve's polynomial, which is one less than
// its order.
func (c *Curve) Degree() int {
	return len(c.points) - 1
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []Point {
	return slices.Clone(c.points)
}

// ControlPoint returns the control point at index i.
func (c *Curve) ControlPoint(i int) (Point, error) {
	if i < 0 || i >= len(c.points) {
		return Point{}, fmt.Errorf("control point %d of %d: %w", i, len(c.points), ErrIndexOutOfRange)
	}
	return c.points[i], nil
}

// EndPoints returns the first and last control point.
func (c *Curve) EndPoints() (Point, Point) {
	return c.points[0], c.points[len(c.points)-1]
}

func (c *Curve) String() string {
	var sb strings.Builder
	sb.WriteString("Curve[")
	for i, pt := range c.points {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// Transform returns a new curve with every control point transformed by aff.
func (c *Curve) Transform(aff Affine) *Curve {
	pts := make([]Point, len(c.points))
	for i, pt := range c.points {
		pts[i] = pt.Transform(aff)
	}
	return &Curve{cc: c.cc, points: pts}
}

// derivative returns the cached derivative curve. It is shared with other
// callers and must not be modified.
func (c *Curve) derivative() *Curve {
	if !c.cache.derivative.isSet {
		n := len(c.points)
		var d *Curve
		if n <= 1 {
			d = &Curve{cc: c.cc, points: []Point{{}}}
		} else {
			pts := make([]Point, n-1)
			for i := range pts {
				pts[i] = Point(c.points[i+1].Sub(c.points[i]).Mul(float64(n - 1)))
			}
			d = &Curve{cc: c.cc, points: pts}
		}
		c.cache.derivative.set(d)
	}
	return c.cache.derivative.value
}

// nthDerivative returns the cached n-th derivative, n ≥ 1.
func (c *Curve) nthDerivative(n int) *Curve {
	d := c.derivative()
	for range n - 1 {
		d = d.derivative()
	}
	return d
}

// Derivative returns the derivative of the curve, a curve of one lower order.
// The derivative of a single point is the zero vector.
func (c *Curve) Derivative() *Curve {
	return c.derivative().Clone()
}

// NthDerivative returns the n-th derivative of the curve. It returns
// [ErrZeroDerivative] if n < 1.
func (c *Curve) NthDerivative(n int) (*Curve, error) {
	if n < 1 {
		return nil, ErrZeroDerivative
	}
	return c.nthDerivative(n).Clone(), nil
}

// DerivativeAt returns the first derivative at t.
func (c *Curve) DerivativeAt(t float64) Vec2 {
	return Vec2(c.derivative().ValueAt(t))
}

// NthDerivativeAt returns the n-th derivative at t. It returns
// [ErrZeroDerivative] if n < 1.
func (c *Curve) NthDerivativeAt(n int, t float64) (Vec2, error) {
	if n < 1 {
		return Vec2{}, ErrZeroDerivative
	}
	return Vec2(c.nthDerivative(n).ValueAt(t)), nil
}

// Curvature returns the signed curvature at t. At stationary points, where
// the first derivative vanishes and curvature is undefined, it returns 0.
func (c *Curve) Curvature(t float64) float64 {
	d1 := c.DerivativeAt(t)
	d2 := Vec2(c.nthDerivative(2).ValueAt(t))
	h := d1.Hypot()
	if h == 0 {
		return 0
	}
	return d1.Cross(d2) / (h * h * h)
}

// CurvatureDerivative returns the derivative of the signed curvature with
// respect to t. Like [Curve.Curvature], it returns 0 at stationary points.
func (c *Curve) CurvatureDerivative(t float64) float64 {
	d1 := c.DerivativeAt(t)
	d2 := Vec2(c.nthDerivative(2).ValueAt(t))
	d3 := Vec2(c.nthDerivative(3).ValueAt(t))
	h := d1.Hypot()
	if h == 0 {
		return 0
	}
	h3 := h * h * h
	return d1.Cross(d3)/h3 - 3*d1.Dot(d2)*d1.Cross(d2)/(h3*h*h)
}

// Tangent returns the tangent at t. If normalize is set, the tangent has unit
// length, unless it is the zero vector.
func (c *Curve) Tangent(t float64, normalize bool) Vec2 {
	d := c.DerivativeAt(t)
	if normalize && d.Hypot() > 0 {
		d = d.Normalize()
	}
	return d
}

// Normal returns the tangent at t rotated by 90°.
func (c *Curve) Normal(t float64, normalize bool) Vec2 {
	return c.Tangent(t, normalize).Perp()
}

// Reverse reverses the direction of the curve.
func (c *Curve) Reverse() {
	slices.Reverse(c.points)
	c.resetCache()
}

// ManipulateControlPoint replaces the control point at index i.
func (c *Curve) ManipulateControlPoint(i int, pt Point) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("control point %d of %d: %w", i, len(c.points), ErrIndexOutOfRange)
	}
	c.points[i] = pt
	c.resetCache()
	return nil
}

// ManipulateCurvature moves the interior control points so that the curve
// passes through pt at parameter t, keeping the end points fixed. t must lie
// in the open interval (0, 1).
//
// This uses the "ABC" relation of quadratic and cubic curves, and thus only
// supports curves of order 3 and 4; other orders result in
// [ErrUnsupportedOrder].
//
// See https://pomax.github.io/bezierinfo/#abc and
// https://pomax.github.io/bezierinfo/#moulding.
func (c *Curve) ManipulateCurvature(t float64, pt Point) error {
	n := len(c.points)
	if n != 3 && n != 4 {
		return fmt.Errorf("curve of order %d: %w", n, ErrUnsupportedOrder)
	}
	d := float64(n - 1)
	td := math.Pow(t, d)
	mtd := math.Pow(1-t, d)
	ratio := math.Abs((td + mtd - 1) / (td + mtd))
	u := mtd / (td + mtd)
	p0, pn := c.points[0], c.points[n-1]
	cp := Point(Vec2(p0).Mul(u).Add(Vec2(pn).Mul(1 - u)))
	a := pt.Translate(cp.Sub(pt).Mul(-1 / ratio))

	switch n {
	case 3:
		c.points[1] = a
	case 4:
		p1, p2 := c.points[1], c.points[2]
		mt := 1 - t
		shift := pt.Sub(c.ValueAt(t))
		e1 := Point(Vec2(p0).Mul(mt * mt).Add(Vec2(p1).Mul(2 * t * mt)).Add(Vec2(p2).Mul(t * t))).Translate(shift)
		e2 := Point(Vec2(p1).Mul(mt * mt).Add(Vec2(p2).Mul(2 * t * mt)).Add(Vec2(pn).Mul(t * t))).Translate(shift)
		v1 := a.Translate(a.Sub(e1).Mul(-1 / mt))
		v2 := a.Translate(e2.Sub(a).Mul(1 / t))
		c.points[1] = p0.Translate(v1.Sub(p0).Mul(1 / t))
		c.points[2] = pn.Translate(pn.Sub(v2).Mul(-1 / mt))
	}
	c.resetCache()
	return nil
}

// ElevateOrder adds a control point without changing the shape of the curve.
func (c *Curve) ElevateOrder() {
	c.points = applyMatrix(c.cc.Elevate(len(c.points)), c.points)
	c.resetCache()
}

// LowerOrder removes a control point, approximating the curve's shape.
//
// Lowering undoes [Curve.ElevateOrder] exactly, but for curves that weren't
// produced by elevation the result is a least-squares approximation; see
// [CoeffCache.Lower]. Lowering a single point returns [ErrMinimumOrder].
func (c *Curve) LowerOrder() error {
	if len(c.points) <= 1 {
		return ErrMinimumOrder
	}
	c.points = applyMatrix(c.cc.Lower(len(c.points)), c.points)
	c.resetCache()
	return nil
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
