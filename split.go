package bezier

import "slices"

// Subdivision stops at this depth even if the flatness criteria aren't met,
// which bounds the work spent on degenerate input.
const maxPolylineDepth = 32

// splitPoints splits the control points of a curve at z.
func (cc *CoeffCache) splitPoints(pts []Point, z float64) (left, right []Point) {
	n := len(pts)
	return applyMatrix(cc.SplitLeft(n, z), pts), applyMatrix(cc.SplitRight(n, z), pts)
}

// Split splits the curve at z into two curves of the same order covering
// [0, z] and [z, 1]. Both share the curve's coefficient cache.
func (c *Curve) Split(z float64) (*Curve, *Curve) {
	left, right := c.cc.splitPoints(c.points, z)
	return &Curve{cc: c.cc, points: left}, &Curve{cc: c.cc, points: right}
}

// Subsegment returns the part of the curve between t0 and t1 as a curve of
// the same order. If t1 < t0, the subsegment runs in reverse.
func (c *Curve) Subsegment(t0, t1 float64) *Curve {
	return &Curve{cc: c.cc, points: c.subsegmentPoints(t0, t1)}
}

func (c *Curve) subsegmentPoints(t0, t1 float64) []Point {
	reverse := t1 < t0
	if reverse {
		t0, t1 = t1, t0
	}
	var pts []Point
	if t0 >= 1 {
		pts = make([]Point, len(c.points))
		end := c.points[len(c.points)-1]
		for i := range pts {
			pts[i] = end
		}
	} else {
		pts = slices.Clone(c.points)
		if t0 > 0 {
			_, pts = c.cc.splitPoints(pts, t0)
		}
		if z := (t1 - t0) / (1 - t0); z < 1 {
			pts, _ = c.cc.splitPoints(pts, z)
		}
	}
	if reverse {
		slices.Reverse(pts)
	}
	return pts
}

// Polyline approximates the curve with a sequence of points, starting and
// ending at the curve's end points.
//
// The control polygon is bisected recursively until the length of each
// piece's control polygon is at most smoothness times the length of its
// chord, or no more than precision. The precision bound applies to the
// control polygon rather than the chord: a closed piece has a chord of zero
// length but still gets subdivided. A smoothness of 1 with a precision of 0
// only accepts perfectly straight pieces; use [DefaultSmoothness] and
// [DefaultPrecision] for typical use.
//
// The result is cached for the most recently used pair of tolerances, but the
// returned slice is always a fresh copy.
func (c *Curve) Polyline(smoothness, precision float64) []Point {
	params := [2]float64{smoothness, precision}
	if c.cache.polyline.isSet && c.cache.polylineParams == params {
		return slices.Clone(c.cache.polyline.value)
	}

	type piece struct {
		pts   []Point
		depth int
	}
	n := len(c.points)
	out := []Point{c.points[0]}
	stack := []piece{{c.points, 0}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		chord := p.pts[0].Distance(p.pts[n-1])
		var hull float64
		for i := 1; i < n; i++ {
			hull += p.pts[i].Distance(p.pts[i-1])
		}
		if hull <= smoothness*chord || hull <= precision {
			out = append(out, p.pts[n-1])
			continue
		}
		if p.depth >= maxPolylineDepth {
			Logger().Debug("polyline depth limit reached", "depth", p.depth, "hull", hull, "chord", chord)
			out = append(out, p.pts[n-1])
			continue
		}
		left, right := c.cc.splitPoints(p.pts, 0.5)
		stack = append(stack, piece{right, p.depth + 1}, piece{left, p.depth + 1})
	}

	c.cache.polyline.set(out)
	c.cache.polylineParams = params
	return slices.Clone(out)
}
