package bezier

import (
	"sync"

	"gonum.org/v1/gonum/integrate/quad"
)

// LegendreOrder is the number of Gauss-Legendre nodes used to integrate arc
// length.
const LegendreOrder = 64

// legendreNodes returns the nodes and weights of Gauss-Legendre quadrature on
// [-1, 1].
var legendreNodes = sync.OnceValues(func() (x, w []float64) {
	x = make([]float64, LegendreOrder)
	w = make([]float64, LegendreOrder)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)
	return x, w
})

// Length returns the arc length of the whole curve.
func (c *Curve) Length() float64 {
	return c.LengthBetween(0, 1)
}

// LengthTo returns the arc length of the curve between 0 and t.
func (c *Curve) LengthTo(t float64) float64 {
	return c.LengthBetween(0, t)
}

// LengthBetween returns the arc length of the curve between t1 and t2. The
// result is negative if t2 < t1.
func (c *Curve) LengthBetween(t1, t2 float64) float64 {
	if t1 == t2 {
		return 0
	}
	x, w := legendreNodes()
	d := c.derivative()
	half := (t2 - t1) / 2
	mid := (t1 + t2) / 2
	var sum float64
	for i, xi := range x {
		sum += w[i] * Vec2(d.ValueAt(half*xi+mid)).Hypot()
	}
	return sum * half
}

// IterateByLength returns the parameter that lies an arc length of s from t
// along the curve; s may be negative to move backwards. If that would move
// past the start or end of the curve, it returns 0 or 1 respectively.
//
// The parameter is found with Halley's method, to within an arc length of
// epsilon or [MaxIterations] iterations, whichever comes first.
func (c *Curve) IterateByLength(t, s, epsilon float64) float64 {
	total := c.Length()
	target := c.LengthTo(t) + s
	if target <= 0 {
		return 0
	}
	if target >= total {
		return 1
	}
	d1, d2 := c.derivative(), c.nthDerivative(2)
	fn := func(u float64) (f, df, ddf float64) {
		v1, v2 := Vec2(d1.ValueAt(u)), Vec2(d2.ValueAt(u))
		f = c.LengthBetween(t, u) - s
		df = v1.Hypot()
		if df != 0 {
			ddf = v1.Dot(v2) / df
		}
		return f, df, ddf
	}
	return halley(fn, target/total, 0, 1, epsilon, MaxIterations)
}
