package bezier

import (
	"fmt"
	"math"
	"testing"
)

func TestLength(t *testing.T) {
	line := NewCurve(nil, Pt(0, 0), Pt(3, 4))
	diff(t, 5.0, line.Length(), approx(1e-12))
	diff(t, 2.5, line.LengthTo(0.5), approx(1e-12))
	diff(t, -3.0, line.LengthBetween(0.8, 0.2), approx(1e-12))
	diff(t, 0.0, line.LengthBetween(0.4, 0.4))

	// ∫ √(1 + 4x²) dx over [-1, 1]
	want := math.Sqrt(5) + math.Asinh(2)/2
	diff(t, want, NewCurve(nil, parabola...).Length(), approx(1e-9))

	diff(t, 0.0, NewCurve(nil, Pt(1, 1)).Length())
}

func TestLengthAdditive(t *testing.T) {
	for _, pts := range [][]Point{cubicS, quintic} {
		c := NewCurve(nil, pts...)
		total := c.Length()
		for _, s := range []float64{0.1, 0.5, 0.83} {
			if got := c.LengthTo(s) + c.LengthBetween(s, 1); math.Abs(got-total) > 1e-6*total {
				t.Errorf("%v: lengths split at %v add up to %v, want %v", c, s, got, total)
			}
			if a, b := c.LengthBetween(0, s), c.LengthBetween(s, 0); math.Abs(a+b) > 1e-12 {
				t.Errorf("%v: reversed length %v isn't the negation of %v", c, b, a)
			}
		}
	}
}

func TestIterateByLength(t *testing.T) {
	line := NewCurve(nil, Pt(0, 0), Pt(3, 4))
	diff(t, 0.5, line.IterateByLength(0, 2.5, 1e-12), approx(1e-12))
	diff(t, 0.1, line.IterateByLength(0.5, -2, 1e-12), approx(1e-12))

	const epsilon = 1e-9
	for _, pts := range [][]Point{cubicS, quintic} {
		c := NewCurve(nil, pts...)
		for _, tc := range []struct{ t, s float64 }{{0.2, 1}, {0.8, -1}, {0, 0.5}, {0.5, 0}} {
			t.Run(fmt.Sprintf("%d/%v/%v", len(pts), tc.t, tc.s), func(t *testing.T) {
				u := c.IterateByLength(tc.t, tc.s, epsilon)
				if got := c.LengthBetween(tc.t, u); math.Abs(got-tc.s) > 10*epsilon {
					t.Errorf("moved %v to %v, covering %v instead of %v", tc.t, u, got, tc.s)
				}
			})
		}

		diff(t, 1.0, c.IterateByLength(0.5, 100, epsilon))
		diff(t, 0.0, c.IterateByLength(0.5, -100, epsilon))
	}
}

func TestLegendreNodes(t *testing.T) {
	x, w := legendreNodes()
	if len(x) != LegendreOrder || len(w) != LegendreOrder {
		t.Fatalf("got %d nodes and %d weights", len(x), len(w))
	}
	var sum float64
	for _, wi := range w {
		sum += wi
	}
	diff(t, 2.0, sum, approx(1e-12))
}
