package bezier

import (
	"fmt"
	"testing"
)

func TestSplit(t *testing.T) {
	c := NewCurve(nil, quintic...)
	for _, z := range []float64{0.5, 0.1, 0.77} {
		left, right := c.Split(z)
		if left.Order() != c.Order() || right.Order() != c.Order() {
			t.Fatalf("split changed the order")
		}
		for _, s := range sample(8) {
			diff(t, c.ValueAt(s*z), left.ValueAt(s), approx(1e-11))
			diff(t, c.ValueAt(z+s*(1-z)), right.ValueAt(s), approx(1e-11))
		}
	}
}

func TestSubsegment(t *testing.T) {
	c := NewCurve(nil, cubicS...)
	sub := c.Subsegment(0.2, 0.7)
	rev := c.Subsegment(0.7, 0.2)
	for _, s := range sample(8) {
		diff(t, c.ValueAt(0.2+0.5*s), sub.ValueAt(s), approx(1e-12))
		diff(t, c.ValueAt(0.7-0.5*s), rev.ValueAt(s), approx(1e-12))
	}
	whole := c.Subsegment(0, 1)
	diff(t, c.ControlPoints(), whole.ControlPoints())

	end := c.Subsegment(1, 1)
	for _, pt := range end.ControlPoints() {
		diff(t, Pt(3, 0), pt)
	}
}

func TestPolyline(t *testing.T) {
	line := NewCurve(nil, Pt(0, 0), Pt(1, 1), Pt(2, 2))
	diff(t, []Point{Pt(0, 0), Pt(2, 2)}, line.Polyline(DefaultSmoothness, DefaultPrecision))

	for _, pts := range [][]Point{parabola, cubicS, figureEight, quintic} {
		t.Run(fmt.Sprint(len(pts)), func(t *testing.T) {
			c := NewCurve(nil, pts...)
			poly := c.Polyline(DefaultSmoothness, DefaultPrecision)
			if len(poly) < 3 {
				t.Fatalf("got only %d points for a curved curve", len(poly))
			}
			p0, p1 := c.EndPoints()
			diff(t, p0, poly[0])
			diff(t, p1, poly[len(poly)-1], approx(1e-12))
			for i := 1; i < len(poly); i++ {
				mid := poly[i-1].Lerp(poly[i], 0.5)
				if d := c.Distance(mid); d > 0.05 {
					t.Errorf("segment %d strays %v from the curve", i, d)
				}
			}

			// Cached results are copies.
			poly[0] = Pt(1000, 1000)
			again := c.Polyline(DefaultSmoothness, DefaultPrecision)
			diff(t, p0, again[0])
			finer := c.Polyline(1.000001, 1e-6)
			if len(finer) <= len(again) {
				t.Errorf("tighter tolerances gave %d points, looser ones %d", len(finer), len(again))
			}
		})
	}
}

func TestPolylineClosed(t *testing.T) {
	// A loop whose end points coincide still gets flattened.
	c := NewCurve(nil, Pt(0, 0), Pt(2, 2), Pt(-2, 2), Pt(0, 0))
	if poly := c.Polyline(DefaultSmoothness, DefaultPrecision); len(poly) < 4 {
		t.Errorf("got %v for a closed loop", poly)
	}
}

func TestPolylinePoint(t *testing.T) {
	c := NewCurve(nil, Pt(1, 2))
	diff(t, []Point{Pt(1, 2), Pt(1, 2)}, c.Polyline(DefaultSmoothness, DefaultPrecision))
}
