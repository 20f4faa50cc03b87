package bezier

import (
	"gonum.org/v1/gonum/mat"
)

func pointsDense(pts []Point) *mat.Dense {
	d := mat.NewDense(len(pts), 2, nil)
	for i, pt := range pts {
		d.Set(i, 0, pt.X)
		d.Set(i, 1, pt.Y)
	}
	return d
}

func densePoints(m mat.Matrix) []Point {
	r, _ := m.Dims()
	pts := make([]Point, r)
	for i := range pts {
		pts[i] = Point{m.At(i, 0), m.At(i, 1)}
	}
	return pts
}

// applyMatrix returns m·P, where P has one row per control point.
func applyMatrix(m mat.Matrix, pts []Point) []Point {
	var out mat.Dense
	out.Mul(m, pointsDense(pts))
	return densePoints(&out)
}

// powerCoeffs returns the coefficients a₀, a₁, … of the curve in the power
// basis, so that B(t) = Σ aᵢ tⁱ.
func (c *Curve) powerCoeffs() []Vec2 {
	if !c.cache.power.isSet {
		pts := applyMatrix(c.cc.Bernstein(len(c.points)), c.points)
		coeffs := make([]Vec2, len(pts))
		for i, pt := range pts {
			coeffs[i] = Vec2(pt)
		}
		c.cache.power.set(coeffs)
	}
	return c.cache.power.value
}

// axisCoeffs returns the power-basis coefficients of a single coordinate, x
// for k == 0 and y otherwise.
func (c *Curve) axisCoeffs(k int) []float64 {
	pw := c.powerCoeffs()
	out := make([]float64, len(pw))
	for i, v := range pw {
		out[i] = Point(v).axis(k)
	}
	return out
}

// ValueAt evaluates the curve at t. The curve is defined for t in [0, 1],
// but any t is accepted. The zero Curve evaluates to the origin.
func (c *Curve) ValueAt(t float64) Point {
	if len(c.points) == 0 {
		return Point{}
	}
	pw := c.powerCoeffs()
	var v Vec2
	for i := len(pw) - 1; i >= 0; i-- {
		v = v.Mul(t).Add(pw[i])
	}
	return Point(v)
}

// ValuesAt evaluates the curve at every parameter in ts. It computes the
// product T·M·P in one go, where row i of T holds the powers of ts[i].
func (c *Curve) ValuesAt(ts []float64) []Point {
	if len(ts) == 0 {
		return nil
	}
	n := len(c.points)
	if n == 0 {
		return make([]Point, len(ts))
	}
	tm := mat.NewDense(len(ts), n, nil)
	for i, t := range ts {
		p := 1.0
		for j := range n {
			tm.Set(i, j, p)
			p *= t
		}
	}
	var out mat.Dense
	out.Product(tm, c.cc.Bernstein(n), pointsDense(c.points))
	return densePoints(&out)
}
