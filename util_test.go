package bezier

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and thus points, vectors and rectangles, up to an
// absolute tolerance.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

// sample returns n+1 evenly spaced parameters in [0, 1].
func sample(n int) []float64 {
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = float64(i) / float64(n)
	}
	return ts
}

// deCasteljau evaluates a curve the slow way, as a reference.
func deCasteljau(pts []Point, t float64) Point {
	pts = append([]Point(nil), pts...)
	for n := len(pts) - 1; n > 0; n-- {
		for i := range n {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}

var (
	// cubicS crosses the x axis at its ends and in its middle.
	cubicS = []Point{Pt(0, 0), Pt(1, 2), Pt(2, -2), Pt(3, 0)}
	// figureEight crosses itself at (0.5, 0.3).
	figureEight = []Point{Pt(0, 0), Pt(2, 1), Pt(-1, 1), Pt(1, 0)}
	// parabola traces y = x² for x in [-1, 1], with x = 2t − 1.
	parabola = []Point{Pt(-1, 1), Pt(0, -1), Pt(1, 1)}
	quintic  = []Point{Pt(0, 0), Pt(1, 3), Pt(2.5, -1), Pt(4, 4), Pt(5.5, 0.5), Pt(7, 2)}
)
