package bezier

// Intersection returns the points where c and o cross, found by recursive
// bisection of both curves.
//
// Pairs of pieces whose control point boxes don't overlap are discarded.
// Once both pieces of a pair are smaller than epsilon, the center of the
// first piece's box is reported as an intersection. Points within epsilon of
// an earlier one are reported only once. If stopAtFirst is set, the search
// ends at the first intersection.
//
// Passing c itself as o finds self-intersections; see
// [Curve.SelfIntersection].
func (c *Curve) Intersection(o *Curve, stopAtFirst bool, epsilon float64) []Point {
	var stack []segmentPair
	if o == c {
		pieces := c.monotonePieces(epsilon)
		for i := len(pieces) - 1; i >= 0; i-- {
			for j := len(pieces) - 1; j > i; j-- {
				stack = append(stack, segmentPair{pieces[i], pieces[j]})
			}
		}
	} else {
		stack = append(stack, segmentPair{c.points, o.points})
	}
	return c.cc.intersectPairs(stack, stopAtFirst, epsilon)
}

// SelfIntersection returns the points where the curve crosses itself. It is
// equivalent to c.Intersection(c, stopAtFirst, epsilon).
func (c *Curve) SelfIntersection(stopAtFirst bool, epsilon float64) []Point {
	return c.Intersection(c, stopAtFirst, epsilon)
}

type segmentPair struct {
	a, b []Point
}

// monotonePieces splits the curve at its extrema into pieces that are
// monotone in both coordinates and thus cannot intersect themselves. A gap of
// epsilon is left around every split so that neighboring pieces don't touch.
func (c *Curve) monotonePieces(epsilon float64) [][]Point {
	var pieces [][]Point
	lo := 0.0
	add := func(lo, hi float64) {
		if hi > lo {
			pieces = append(pieces, c.subsegmentPoints(lo, hi))
		}
	}
	for _, t := range c.Extrema() {
		add(lo, t-epsilon/2)
		lo = t + epsilon/2
	}
	add(lo, 1)
	return pieces
}

func (cc *CoeffCache) intersectPairs(stack []segmentPair, stopAtFirst bool, epsilon float64) []Point {
	var found []Point
	examined := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		examined++

		ra, rb := boundingRect(p.a), boundingRect(p.b)
		if !ra.Overlaps(rb) {
			continue
		}
		splitA, splitB := ra.Diagonal() >= epsilon, rb.Diagonal() >= epsilon
		if !splitA && !splitB {
			pt := ra.Center()
			if !containsNear(found, pt, epsilon) {
				found = append(found, pt)
				if stopAtFirst {
					break
				}
			}
			continue
		}

		as, bs := cc.halves(p.a, splitA), cc.halves(p.b, splitB)
		// Pushed in reverse so that the pieces nearest to the start of both
		// curves are examined first.
		for i := len(bs) - 1; i >= 0; i-- {
			for j := len(as) - 1; j >= 0; j-- {
				stack = append(stack, segmentPair{as[j], bs[i]})
			}
		}
	}
	Logger().Debug("curve intersection", "pairs", examined, "found", len(found))
	return found
}

// halves bisects pts if split is set and returns it unchanged otherwise.
func (cc *CoeffCache) halves(pts []Point, split bool) [][]Point {
	if !split {
		return [][]Point{pts}
	}
	left, right := cc.splitPoints(pts, 0.5)
	return [][]Point{left, right}
}

func containsNear(pts []Point, pt Point, epsilon float64) bool {
	for _, o := range pts {
		if o.Distance(pt) < epsilon {
			return true
		}
	}
	return false
}
