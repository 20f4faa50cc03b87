package bezier

import (
	"math"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Leading coefficients smaller than this, relative to the largest
// coefficient, are treated as zero when determining a polynomial's degree.
const degreeEpsilon = 1e-12

// Eigenvalues of the companion matrix whose imaginary part is within this
// tolerance, relative to their magnitude, count as real roots. Double roots
// come out as conjugate pairs with a small imaginary part.
const realEpsilon = 1e-7

// SolveQuadratic finds real roots of quadratic equations.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.
//
// This function tries to be quite numerically robust. If the equation is
// nearly linear, it will return the root ignoring the quadratic term; the
// other root might be out of representable range. In the degenerate case
// where all coefficients are zero, so that all values of x satisfy the
// equation, a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if math.IsInf(root2, 0) {
		return [2]float64{root1}, 1
	}
	if root2 > root1 {
		return [2]float64{root1, root2}, 2
	}
	return [2]float64{root2, root1}, 2
}

// SolvePolynomial returns the real roots of the polynomial
// c[0] + c[1] x + c[2] x² + …, in ascending order. Repeated roots may be
// reported more than once.
//
// Leading coefficients that are negligible compared to the others are dropped
// first, so that curves whose polynomial is of lower degree than their order
// suggests are solved at their actual degree. Polynomials of degree three and
// higher are solved as the eigenvalues of their companion matrix, followed by
// Newton refinement. The zero polynomial and nonzero constants have no roots.
func SolvePolynomial(c []float64) []float64 {
	c = trimPolynomial(c)
	var roots []float64
	for len(c) > 1 && c[0] == 0 {
		roots = append(roots, 0)
		c = c[1:]
	}
	var found []float64
	switch len(c) - 1 {
	case -1, 0:
	case 1:
		found = append(found, -c[0]/c[1])
	case 2:
		r, n := SolveQuadratic(c[0], c[1], c[2])
		found = append(found, r[:n]...)
	default:
		found = companionRoots(c)
	}
	for _, r := range found {
		roots = append(roots, polishRoot(c, r))
	}
	slices.Sort(roots)
	return roots
}

// trimPolynomial drops negligible leading coefficients. It returns an empty
// slice for the zero polynomial.
func trimPolynomial(c []float64) []float64 {
	var scale float64
	for _, v := range c {
		scale = max(scale, math.Abs(v))
	}
	n := len(c)
	for n > 0 && math.Abs(c[n-1]) <= degreeEpsilon*scale {
		n--
	}
	return c[:n]
}

// companionRoots returns the real eigenvalues of the companion matrix of c,
// whose leading coefficient must be nonzero.
func companionRoots(c []float64) []float64 {
	n := len(c) - 1
	lead := c[n]
	comp := mat.NewDense(n, n, nil)
	for i := range n {
		if i > 0 {
			comp.Set(i, i-1, 1)
		}
		comp.Set(i, n-1, -c[i]/lead)
	}
	var eig mat.Eigen
	if !eig.Factorize(comp, mat.EigenNone) {
		Logger().Debug("eigenvalue decomposition did not converge", "degree", n)
		return nil
	}
	var out []float64
	for _, v := range eig.Values(nil) {
		if math.Abs(imag(v)) <= realEpsilon*(1+cmplx.Abs(v)) {
			out = append(out, real(v))
		}
	}
	return out
}

// evalPoly evaluates c[0] + c[1] x + … and its first derivative using
// Horner's method.
func evalPoly(c []float64, x float64) (f, df float64) {
	for i := len(c) - 1; i >= 0; i-- {
		df = df*x + f
		f = f*x + c[i]
	}
	return f, df
}

// polishRoot refines an approximate root of c with Newton-Raphson iteration,
// stopping as soon as an iteration fails to improve the residual.
func polishRoot(c []float64, x float64) float64 {
	f, df := evalPoly(c, x)
	for range 8 {
		if f == 0 || df == 0 {
			break
		}
		nx := x - f/df
		nf, ndf := evalPoly(c, nx)
		if math.Abs(nf) >= math.Abs(f) {
			break
		}
		x, f, df = nx, nf, ndf
	}
	return x
}

// unitRoots returns those roots that lie in [0, 1], tolerating a small
// overshoot that is clamped away.
func unitRoots(roots []float64) []float64 {
	const tol = 1e-9
	out := roots[:0:0]
	for _, r := range roots {
		if r >= -tol && r <= 1+tol {
			out = append(out, min(max(r, 0), 1))
		}
	}
	return out
}
