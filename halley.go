package bezier

import "math"

// halleyFunc returns the value and first two derivatives of a function at t.
// A function that only knows its first derivative may return 0 for the second,
// which turns Halley's method into Newton's.
type halleyFunc func(t float64) (f, df, ddf float64)

// halley finds a root of fn in [lo, hi], starting at t, using Halley's
// method. It stops once |f| < epsilon or after maxIter iterations.
//
// If an update would leave [lo, hi], or the derivatives vanish, the best
// estimate seen so far is returned instead of diverging.
func halley(fn halleyFunc, t, lo, hi, epsilon float64, maxIter int) float64 {
	best, bestF := t, math.Inf(1)
	for i := range maxIter {
		f, df, ddf := fn(t)
		if af := math.Abs(f); af < bestF {
			best, bestF = t, af
		}
		if math.Abs(f) < epsilon {
			return t
		}

		var step float64
		if denom := 2*df*df - f*ddf; denom != 0 {
			step = 2 * f * df / denom
		} else if df != 0 {
			step = f / df
		} else {
			Logger().Debug("root iteration hit a stationary point", "t", t, "iteration", i)
			return best
		}
		next := t - step
		if math.IsNaN(next) || next < lo || next > hi {
			Logger().Debug("root iteration left its domain", "t", t, "next", next, "iteration", i)
			return best
		}
		if next == t {
			return best
		}
		t = next
	}
	Logger().Debug("root iteration did not converge", "best", best, "residual", bestF, "iterations", maxIter)
	return best
}
