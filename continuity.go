package bezier

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// ApplyContinuity moves the first len(beta)+1 control points of c so that c
// starts where src ends and continues it smoothly.
//
// beta holds the reparametrization factors β₁, β₂, … of geometric
// continuity. With beta = [1, 0, …, 0], the first len(beta) derivatives of c
// at 0 equal those of src at 1 (parametric continuity). Other values relate
// the derivatives through the chain rule for a reparametrization whose
// derivatives at the joint are β₁, β₂, …; for example, beta = [2] makes c's
// first derivative twice that of src.
//
// c must have more than len(beta) control points, otherwise
// [ErrContinuityOrder] is returned.
func (c *Curve) ApplyContinuity(src *Curve, beta []float64) error {
	k := len(beta)
	n := len(c.points)
	if k+1 > n {
		return fmt.Errorf("G%d continuity with %d control points: %w", k, n, ErrContinuityOrder)
	}

	derivs := make([]Vec2, k+1)
	derivs[0] = Vec2(src.ValueAt(1))
	for i := 1; i <= k; i++ {
		derivs[i] = Vec2(src.nthDerivative(i).ValueAt(1))
	}

	bell := bellTriangle(beta)
	wanted := mat.NewDense(k+1, 2, nil)
	for i := range k + 1 {
		var v Vec2
		for j := 0; j <= i; j++ {
			v = v.Add(derivs[j].Mul(bell.At(i, j)))
		}
		wanted.Set(i, 0, v.X)
		wanted.Set(i, 1, v.Y)
	}

	// Row i of fa maps the first control points to the i-th derivative at 0:
	// d!/(d−i)! · Σⱼ (−1)^(i−j) C(i, j) Pⱼ.
	d := n - 1
	fa := mat.NewDense(k+1, k+1, nil)
	for i := range k + 1 {
		f := fallingFactorial(d, i)
		for j := 0; j <= i; j++ {
			v := f * float64(combin.Binomial(i, j))
			if (i-j)%2 == 1 {
				v = -v
			}
			fa.Set(i, j, v)
		}
	}

	var p mat.Dense
	if err := p.Solve(fa, wanted); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return fmt.Errorf("solving continuity constraints: %w: %w", ErrContinuityOrder, err)
		}
		Logger().Debug("ill-conditioned continuity constraints", "order", n, "condition", float64(cond))
	}
	for i := range k + 1 {
		c.points[i] = Point{p.At(i, 0), p.At(i, 1)}
	}
	c.resetCache()
	return nil
}

// bellTriangle returns the lower triangular matrix of partial Bell
// polynomials Bₙ,ₘ(β₁, …, βₙ₋ₘ₊₁) for n, m ≤ len(beta). By Faà di Bruno's
// formula, the n-th derivative of f∘g is Σₘ Bₙ,ₘ(g′, g″, …)·f⁽ᵐ⁾.
func bellTriangle(beta []float64) *mat.Dense {
	k := len(beta)
	b := mat.NewDense(k+1, k+1, nil)
	b.Set(0, 0, 1)
	for n := 1; n <= k; n++ {
		for m := 1; m <= n; m++ {
			var v float64
			for i := 1; i <= n-m+1; i++ {
				v += float64(combin.Binomial(n-1, i-1)) * beta[i-1] * b.At(n-i, m-1)
			}
			b.Set(n, m, v)
		}
	}
	return b
}

// fallingFactorial returns n·(n−1)·…·(n−k+1).
func fallingFactorial(n, k int) float64 {
	f := 1.0
	for i := range k {
		f *= float64(n - i)
	}
	return f
}
