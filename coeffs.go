package bezier

import (
	"errors"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// CoeffCache memoizes the coefficient matrices that curves of a given order
// share: the Bernstein matrix, the matrices splitting a curve at its
// midpoint, and the matrices raising and lowering its order.
//
// Entries are computed on first use and never change afterwards, so the
// matrices returned by a CoeffCache are shared and must not be modified. A
// CoeffCache is safe for concurrent use. Typically one cache is created per
// process (or per test) and passed to every [NewCurve] call.
type CoeffCache struct {
	mu         sync.Mutex
	bernstein  map[int]*mat.Dense
	splitLeft  map[int]*mat.Dense
	splitRight map[int]*mat.Dense
	elevate    map[int]*mat.Dense
	lower      map[int]*mat.Dense
}

// NewCoeffCache returns an empty cache.
func NewCoeffCache() *CoeffCache {
	return &CoeffCache{
		bernstein:  map[int]*mat.Dense{},
		splitLeft:  map[int]*mat.Dense{},
		splitRight: map[int]*mat.Dense{},
		elevate:    map[int]*mat.Dense{},
		lower:      map[int]*mat.Dense{},
	}
}

// Len returns the total number of cached matrices.
func (cc *CoeffCache) Len() int {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return len(cc.bernstein) + len(cc.splitLeft) + len(cc.splitRight) + len(cc.elevate) + len(cc.lower)
}

// lookup returns the entry for n in m, building it with build if it is
// missing. build runs without the lock held, so it may consult other entries
// of the cache. If two callers race to build the same entry, the first
// insertion wins and both get the same matrix.
func (cc *CoeffCache) lookup(m map[int]*mat.Dense, n int, build func() *mat.Dense) *mat.Dense {
	cc.mu.Lock()
	d, ok := m[n]
	cc.mu.Unlock()
	if ok {
		return d
	}

	d = build()

	cc.mu.Lock()
	defer cc.mu.Unlock()
	if prev, ok := m[n]; ok {
		return prev
	}
	m[n] = d
	return d
}

// Bernstein returns the n×n matrix M that converts the control points P of a
// curve with n control points into power-basis coefficients, so that the
// curve's value at t is [1 t t² … tⁿ⁻¹]·M·P.
//
// M is lower triangular with M[i][j] = C(n−1, i)·C(i, j)·(−1)^(i−j). This is
// exp(S) with S the subdiagonal matrix −1, −2, …, −(n−1), with row i scaled
// by C(n−1, i).
func (cc *CoeffCache) Bernstein(n int) *mat.Dense {
	return cc.lookup(cc.bernstein, n, func() *mat.Dense {
		return bernsteinMatrix(n)
	})
}

func bernsteinMatrix(n int) *mat.Dense {
	d := n - 1
	m := mat.NewDense(n, n, nil)
	for i := range n {
		row := float64(combin.Binomial(d, i))
		for j := 0; j <= i; j++ {
			v := row * float64(combin.Binomial(i, j))
			if (i-j)%2 == 1 {
				v = -v
			}
			m.Set(i, j, v)
		}
	}
	return m
}

// SplitLeft returns the n×n matrix mapping the control points of a curve to
// the control points of its restriction to [0, z].
//
// Only the matrix for z = 0.5, which recursive bisection asks for over and
// over, is cached.
func (cc *CoeffCache) SplitLeft(n int, z float64) *mat.Dense {
	if z == 0.5 {
		return cc.lookup(cc.splitLeft, n, func() *mat.Dense {
			return splitLeftMatrix(n, 0.5)
		})
	}
	return splitLeftMatrix(n, z)
}

// SplitRight returns the n×n matrix mapping the control points of a curve to
// the control points of its restriction to [z, 1].
//
// Only the matrix for z = 0.5 is cached.
func (cc *CoeffCache) SplitRight(n int, z float64) *mat.Dense {
	if z == 0.5 {
		return cc.lookup(cc.splitRight, n, func() *mat.Dense {
			return splitRightMatrix(n, 0.5)
		})
	}
	return splitRightMatrix(n, z)
}

// splitLeftMatrix evaluates M⁻¹·diag(1, z, z², …)·M in closed form. Row i holds
// the Bernstein weights of degree i at z, which is what de Casteljau's
// algorithm computes for the i-th control point of the left half.
func splitLeftMatrix(n int, z float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := range n {
		for j := 0; j <= i; j++ {
			m.Set(i, j, float64(combin.Binomial(i, j))*math.Pow(z, float64(j))*math.Pow(1-z, float64(i-j)))
		}
	}
	return m
}

// splitRightMatrix is the row-mirrored counterpart of splitLeftMatrix: row i
// holds the Bernstein weights of degree n−1−i at z, applied to control points
// i through n−1.
func splitRightMatrix(n int, z float64) *mat.Dense {
	d := n - 1
	m := mat.NewDense(n, n, nil)
	for i := range n {
		for c := 0; c <= d-i; c++ {
			m.Set(i, i+c, float64(combin.Binomial(d-i, c))*math.Pow(z, float64(c))*math.Pow(1-z, float64(d-i-c)))
		}
	}
	return m
}

// Elevate returns the (n+1)×n matrix that maps the n control points of a
// curve to the n+1 control points of the identical curve of one higher order.
func (cc *CoeffCache) Elevate(n int) *mat.Dense {
	return cc.lookup(cc.elevate, n, func() *mat.Dense {
		m := mat.NewDense(n+1, n, nil)
		fn := float64(n)
		for i := range n {
			m.Set(i, i, 1-float64(i)/fn)
			m.Set(i+1, i, float64(i+1)/fn)
		}
		return m
	})
}

// Lower returns the (n−1)×n matrix that maps the n control points of a curve
// to n−1 control points approximating it.
//
// The matrix is the least-squares pseudo-inverse (EᵀE)⁻¹Eᵀ of E = Elevate(n−1).
// Lowering is therefore only an approximation: it exactly recovers the
// original control points when the curve was itself produced by
// elevation, and otherwise returns the closest curve of lower order in the
// least-squares sense of the control points. n must be at least 2.
func (cc *CoeffCache) Lower(n int) *mat.Dense {
	e := cc.Elevate(n - 1)
	return cc.lookup(cc.lower, n, func() *mat.Dense {
		var ete mat.Dense
		ete.Mul(e.T(), e)
		var inv mat.Dense
		if err := inv.Inverse(&ete); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) {
				// EᵀE is symmetric positive definite for every n ≥ 2.
				panic(err)
			}
			Logger().Debug("ill-conditioned order reduction", "order", n, "condition", float64(cond))
		}
		var l mat.Dense
		l.Mul(&inv, e.T())
		return &l
	})
}

// defaultCoeffs backs curves constructed without an explicit cache. It is
// populated lazily like any other cache.
var defaultCoeffs = sync.OnceValue(NewCoeffCache)
