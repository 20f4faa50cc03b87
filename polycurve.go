package bezier

import (
	"fmt"
	"math"
	"slices"
)

// PolyCurve is a chain of curves, typically joined end to end.
//
// A PolyCurve is addressed by a global parameter t in [0, Len()]: the integer
// part of t selects a curve and the fractional part is the parameter on that
// curve. t = Len() is the end of the last curve.
type PolyCurve struct {
	curves []*Curve
}

// NewPolyCurve returns a poly-curve made of the given curves. The curves are
// not copied.
func NewPolyCurve(curves ...*Curve) *PolyCurve {
	return &PolyCurve{curves: slices.Clone(curves)}
}

// Len returns the number of curves.
func (p *PolyCurve) Len() int {
	return len(p.curves)
}

// Curve returns the i-th curve.
func (p *PolyCurve) Curve(i int) *Curve {
	return p.curves[i]
}

// Curves returns the curves of the poly-curve.
func (p *PolyCurve) Curves() []*Curve {
	return slices.Clone(p.curves)
}

// InsertAt inserts c so that it becomes the i-th curve. i may be Len(), which
// appends.
func (p *PolyCurve) InsertAt(i int, c *Curve) error {
	if i < 0 || i > len(p.curves) {
		return fmt.Errorf("curve %d of %d: %w", i, len(p.curves), ErrIndexOutOfRange)
	}
	p.curves = slices.Insert(p.curves, i, c)
	return nil
}

// InsertFront prepends c.
func (p *PolyCurve) InsertFront(c *Curve) {
	p.curves = slices.Insert(p.curves, 0, c)
}

// InsertBack appends c.
func (p *PolyCurve) InsertBack(c *Curve) {
	p.curves = append(p.curves, c)
}

// RemoveAt removes the i-th curve.
func (p *PolyCurve) RemoveAt(i int) error {
	if i < 0 || i >= len(p.curves) {
		return fmt.Errorf("curve %d of %d: %w", i, len(p.curves), ErrIndexOutOfRange)
	}
	p.curves = slices.Delete(p.curves, i, i+1)
	return nil
}

// CurveIndex returns the index of the curve that the global parameter t falls
// on, clamped to the valid range.
func (p *PolyCurve) CurveIndex(t float64) int {
	i, _ := p.local(t)
	return i
}

// local converts a global parameter into a curve index and a parameter on
// that curve. Parameters outside [0, Len()] map to the start of the first
// curve or the end of the last.
func (p *PolyCurve) local(t float64) (int, float64) {
	n := len(p.curves)
	if n == 0 {
		return 0, 0
	}
	t = min(max(t, 0), float64(n))
	i := min(int(math.Floor(t)), n-1)
	return i, t - float64(i)
}

// ValueAt evaluates the poly-curve at the global parameter t, clamped to
// [0, Len()]. An empty poly-curve evaluates to the origin.
func (p *PolyCurve) ValueAt(t float64) Point {
	if len(p.curves) == 0 {
		return Point{}
	}
	i, u := p.local(t)
	return p.curves[i].ValueAt(u)
}

// Length returns the sum of the curves' arc lengths.
func (p *PolyCurve) Length() float64 {
	var l float64
	for _, c := range p.curves {
		l += c.Length()
	}
	return l
}

// Polyline flattens every curve with [Curve.Polyline] and concatenates the
// results. Where one curve ends at the start of the next, the shared point
// is only included once.
func (p *PolyCurve) Polyline(smoothness, precision float64) []Point {
	var out []Point
	for _, c := range p.curves {
		pts := c.Polyline(smoothness, precision)
		if len(out) > 0 && out[len(out)-1] == pts[0] {
			pts = pts[1:]
		}
		out = append(out, pts...)
	}
	return out
}

// BoundingBox returns the union of the curves' bounding boxes. It returns the
// zero rectangle for an empty poly-curve.
func (p *PolyCurve) BoundingBox() Rect {
	if len(p.curves) == 0 {
		return Rect{}
	}
	r := p.curves[0].BoundingBox()
	for _, c := range p.curves[1:] {
		r = r.Union(c.BoundingBox())
	}
	return r
}

// ProjectPoint returns the global parameter of the point on the poly-curve
// closest to pt. Ties are broken in favor of the earlier curve.
func (p *PolyCurve) ProjectPoint(pt Point) float64 {
	best, bestDist := 0.0, math.Inf(1)
	for i, c := range p.curves {
		t := c.ProjectPoint(pt)
		if d := c.ValueAt(t).DistanceSquared(pt); d < bestDist {
			best, bestDist = float64(i)+t, d
		}
	}
	return best
}

// Distance returns the distance between pt and the closest point on the
// poly-curve.
func (p *PolyCurve) Distance(pt Point) float64 {
	if len(p.curves) == 0 {
		return math.Inf(1)
	}
	return p.ValueAt(p.ProjectPoint(pt)).Distance(pt)
}

// Intersection returns the points where the curves of p cross those of o,
// using [Curve.Intersection] on every pair.
//
// If o is p, it returns the self-intersections of the poly-curve: those of
// every curve with itself and with every later curve. Points where a curve
// ends at the start of the next one are joints, not crossings, and are not
// reported.
func (p *PolyCurve) Intersection(o *PolyCurve, stopAtFirst bool, epsilon float64) []Point {
	var found []Point
	add := func(pts []Point, skip []Point) bool {
		for _, pt := range pts {
			if containsNear(skip, pt, epsilon) || containsNear(found, pt, epsilon) {
				continue
			}
			found = append(found, pt)
			if stopAtFirst {
				return true
			}
		}
		return false
	}

	if o != p {
		for _, a := range p.curves {
			for _, b := range o.curves {
				if add(a.Intersection(b, stopAtFirst, epsilon), nil) {
					return found
				}
			}
		}
		return found
	}

	for i, a := range p.curves {
		if add(a.SelfIntersection(stopAtFirst, epsilon), nil) {
			return found
		}
		for j := i + 1; j < len(p.curves); j++ {
			b := p.curves[j]
			// With stopAtFirst, a joint would hide real crossings.
			if add(a.Intersection(b, false, epsilon), p.joints(i, j)) {
				return found
			}
		}
	}
	return found
}

// joints returns the points shared by the ends of curves i and j, where they
// would be reported as intersections.
func (p *PolyCurve) joints(i, j int) []Point {
	a0, a1 := p.curves[i].EndPoints()
	b0, b1 := p.curves[j].EndPoints()
	var out []Point
	for _, pa := range [2]Point{a0, a1} {
		for _, pb := range [2]Point{b0, b1} {
			if pa == pb {
				out = append(out, pa)
			}
		}
	}
	return out
}
