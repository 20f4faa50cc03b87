package bezier

import (
	"math"
	"testing"
)

func TestRoots(t *testing.T) {
	checkRoots(t, NewCurve(nil, cubicS...).Roots(), []float64{0, 0.5, 1})

	// y is zero everywhere and contributes nothing.
	checkRoots(t, NewCurve(nil, Pt(-1, 0), Pt(1, 0)).Roots(), []float64{0.5})

	checkRoots(t, NewCurve(nil, Pt(1, 1), Pt(2, 3), Pt(4, 2)).Roots(), nil)

	// x = 2t − 1 vanishes at 0.5, y = (2t − 1)² has a double root there.
	checkRootsEpsilon(t, NewCurve(nil, parabola...).Roots(), []float64{0.5}, 1e-7)
}

func TestExtrema(t *testing.T) {
	r := math.Sqrt(180) / 60
	checkRoots(t, NewCurve(nil, figureEight...).Extrema(), []float64{0.5 - r, 0.5, 0.5 + r})

	r = 1 / math.Sqrt(12)
	checkRoots(t, NewCurve(nil, cubicS...).Extrema(), []float64{0.5 - r, 0.5 + r})

	checkRoots(t, NewCurve(nil, Pt(0, 0), Pt(3, 4)).Extrema(), nil)
	checkRoots(t, NewCurve(nil, Pt(3, 4)).Extrema(), nil)
}

func TestBoundingBox(t *testing.T) {
	c := NewCurve(nil, cubicS...)
	k := 1 / math.Sqrt(3)
	diff(t, Rect{0, -k, 3, k}, c.BoundingBox(), approx(1e-12))
	diff(t, Rect{0, -2, 3, 2}, c.RelaxedBoundingBox())

	for _, pts := range [][]Point{figureEight, quintic, parabola} {
		c := NewCurve(nil, pts...)
		tight, relaxed := c.BoundingBox(), c.RelaxedBoundingBox()
		for _, s := range sample(50) {
			pt := c.ValueAt(s)
			if !nearRect(tight, pt, 1e-9) {
				t.Errorf("%v: tight box %v doesn't contain %v", c, tight, pt)
			}
			if !nearRect(relaxed, pt, 1e-9) {
				t.Errorf("%v: relaxed box %v doesn't contain %v", c, relaxed, pt)
			}
		}
		if tight.Union(relaxed) != relaxed {
			t.Errorf("%v: tight box %v isn't within relaxed box %v", c, tight, relaxed)
		}
	}
}

func TestProjectPoint(t *testing.T) {
	for _, pts := range [][]Point{parabola, cubicS, quintic} {
		c := NewCurve(nil, pts...)
		for _, s := range []float64{0, 0.3, 0.62, 1} {
			if got := c.ProjectPoint(c.ValueAt(s)); math.Abs(got-s) > 1e-9 {
				t.Errorf("%v: projecting the point at %v gave %v", c, s, got)
			}
		}
	}

	c := NewCurve(nil, parabola...)
	diff(t, 0.5, c.ProjectPoint(Pt(0, -1)), approx(1e-12))
	diff(t, 1.0, c.Distance(Pt(0, -1)), approx(1e-12))
	// Both end points are √2 away; the smaller parameter wins.
	diff(t, 0.0, c.ProjectPoint(Pt(0, 2)))
	diff(t, math.Sqrt2, c.Distance(Pt(0, 2)), approx(1e-12))

	diff(t, []float64{0.5, 0}, c.ProjectPoints([]Point{Pt(0, -1), Pt(0, 2)}), approx(1e-12))
	diff(t, []float64{1, math.Sqrt2}, c.Distances([]Point{Pt(0, -1), Pt(0, 2)}), approx(1e-12))

	pt := NewCurve(nil, Pt(1, 1))
	diff(t, 0.0, pt.ProjectPoint(Pt(4, 5)))
	diff(t, 5.0, pt.Distance(Pt(4, 5)))
}

// nearRect reports whether pt lies in r or within eps of it.
func nearRect(r Rect, pt Point, eps float64) bool {
	return pt.X >= r.X0-eps && pt.X <= r.X1+eps &&
		pt.Y >= r.Y0-eps && pt.Y <= r.Y1+eps
}
