package bezier

import (
	"math"
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi).ThenTranslate(Vec(6, 6))), Pt(3, 2), epsilon)
	assertNear(t, p.Transform(Scale(2, 1).Mul(Translate(Vec(1, 1)))), Pt(8, 5), epsilon)
}

func TestCurveTransform(t *testing.T) {
	const epsilon = 1e-9
	c := NewCurve(nil, Pt(0, 0), Pt(1, 2), Pt(2, -2), Pt(3, 0))
	aff := Rotate(0.7).ThenTranslate(Vec(10, -3))
	tc := c.Transform(aff)
	for _, ts := range []float64{0, 0.25, 0.5, 0.8, 1} {
		assertNear(t, tc.ValueAt(ts), c.ValueAt(ts).Transform(aff), epsilon)
	}
}
