package bezier

import (
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
)

// Roots closer together than this are reported once.
const rootEpsilon = 1e-7

// Roots returns the parameters in [0, 1] at which the x or the y coordinate
// of the curve is zero, in ascending order. A coordinate that is zero
// everywhere contributes no roots.
//
// The returned slice is shared and must not be modified.
func (c *Curve) Roots() []float64 {
	if !c.cache.roots.isSet {
		var roots []float64
		for k := range 2 {
			roots = append(roots, unitRoots(SolvePolynomial(c.axisCoeffs(k)))...)
		}
		c.cache.roots.set(dedupSorted(roots, rootEpsilon))
	}
	return c.cache.roots.value
}

func dedupSorted(xs []float64, eps float64) []float64 {
	slices.Sort(xs)
	out := xs[:0]
	for _, x := range xs {
		if len(out) > 0 && scalar.EqualWithinAbs(x, out[len(out)-1], eps) {
			continue
		}
		out = append(out, x)
	}
	return out
}

// Extrema returns the parameters in [0, 1] at which the x or the y coordinate
// of the curve has a local extremum, that is the roots of its derivative.
//
// The returned slice is shared and must not be modified.
func (c *Curve) Extrema() []float64 {
	if !c.cache.extrema.isSet {
		c.cache.extrema.set(c.derivative().Roots())
	}
	return c.cache.extrema.value
}

// BoundingBox returns the smallest axis-aligned rectangle containing the
// curve.
func (c *Curve) BoundingBox() Rect {
	if !c.cache.tightBox.isSet {
		p0, p1 := c.EndPoints()
		r := NewRectFromPoints(p0, p1)
		for _, t := range c.Extrema() {
			r = r.UnionPoint(c.ValueAt(t))
		}
		c.cache.tightBox.set(r)
	}
	return c.cache.tightBox.value
}

// RelaxedBoundingBox returns the bounding box of the control points. It
// contains the curve, but is usually larger than [Curve.BoundingBox].
func (c *Curve) RelaxedBoundingBox() Rect {
	if !c.cache.relaxedBox.isSet {
		c.cache.relaxedBox.set(boundingRect(c.points))
	}
	return c.cache.relaxedBox.value
}

// projectionPoly holds the terms of (B(t) − q)·B′(t), whose roots are the
// candidates for the point on the curve closest to q. conv holds the
// coefficients of B·B′ and deriv those of B′, so that the polynomial for q is
// conv − q·deriv.
type projectionPoly struct {
	conv  []float64
	deriv []Vec2
}

func (c *Curve) projection() projectionPoly {
	if !c.cache.projection.isSet {
		a := c.powerCoeffs()
		b := make([]Vec2, len(a)-1)
		for j := range b {
			b[j] = a[j+1].Mul(float64(j + 1))
		}
		conv := make([]float64, max(len(a)+len(b)-1, 0))
		for i, ai := range a {
			for j, bj := range b {
				conv[i+j] += ai.Dot(bj)
			}
		}
		c.cache.projection.set(projectionPoly{conv, b})
	}
	return c.cache.projection.value
}

// ProjectPoint returns the parameter of the point on the curve closest to pt.
// Ties are broken in favor of the smaller parameter.
func (c *Curve) ProjectPoint(pt Point) float64 {
	if len(c.points) == 1 {
		return 0
	}
	proj := c.projection()
	q := Vec2(pt)
	f := slices.Clone(proj.conv)
	for k, b := range proj.deriv {
		f[k] -= q.Dot(b)
	}

	best, bestDist := 0.0, c.points[0].DistanceSquared(pt)
	consider := func(t float64) {
		if d := c.ValueAt(t).DistanceSquared(pt); d < bestDist {
			best, bestDist = t, d
		}
	}
	for _, t := range unitRoots(SolvePolynomial(f)) {
		consider(t)
	}
	consider(1)
	return best
}

// ProjectPoints projects each point with [Curve.ProjectPoint].
func (c *Curve) ProjectPoints(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = c.ProjectPoint(pt)
	}
	return out
}

// Distance returns the distance between pt and the closest point on the
// curve.
func (c *Curve) Distance(pt Point) float64 {
	return c.ValueAt(c.ProjectPoint(pt)).Distance(pt)
}

// Distances measures each point with [Curve.Distance].
func (c *Curve) Distances(pts []Point) []float64 {
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = c.Distance(pt)
	}
	return out
}
