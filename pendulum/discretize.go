package pendulum

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// discRoundPrecision is the dt rounding grid for the Discretize memo key:
// (hash(A), hash(B), round(dt, 1e-8)).
const discRoundPrecision = 1e-8

// matrixHash produces a stable string digest of a Dense matrix's entries,
// standing in for the "hash(A)"/"hash(B)" memo key components. Entries are
// formatted at fixed precision so matrices that are numerically equal up
// to floating-point noise still collide onto the same cache entry.
func matrixHash(m *mat.Dense) string {
	r, c := m.Dims()
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d", r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fmt.Fprintf(&b, ":%.12g", m.At(i, j))
		}
	}
	return b.String()
}

// Discretize computes the zero-order-hold discretization (A_d, B_d) of the
// continuous pair (A, B) over step dt via the matrix exponential of the
// augmented block [[A, B], [0, 0]]·dt:
//
//	expm([[A, B], [0, 0]]·dt) = [[A_d, B_d], [0, I]]
//
// Results are memoized on (hash(A), hash(B), dt rounded to 1e-8). Negative
// dt is supported and yields the backward-time discretization.
func (s *System) Discretize(A, B *mat.Dense, dt float64) (*mat.Dense, *mat.Dense, error) {
	if s == nil {
		return nil, nil, ErrNilSystem
	}

	key := discKey{
		aHash: matrixHash(A),
		bHash: matrixHash(B),
		dt:    roundTo(dt, discRoundPrecision),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.discCache[key]; ok {
		return entry.Ad, entry.Bd, nil
	}

	n, _ := A.Dims() // n == 2
	_, m := B.Dims() // m == 1
	size := n + m

	// Build the augmented block [[A, B], [0, 0]]·dt by direct element copy;
	// the bottom m rows stay zero (NewDense zero-initializes).
	aug := mat.NewDense(size, size, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, A.At(i, j)*dt)
		}
		for j := 0; j < m; j++ {
			aug.Set(i, n+j, B.At(i, j)*dt)
		}
	}

	var expAug mat.Dense
	expAug.Exp(aug)

	if math.IsNaN(expAug.At(0, 0)) {
		return nil, nil, fmt.Errorf("pendulum: matrix exponential produced NaN for dt=%g", dt)
	}

	Ad := mat.NewDense(n, n, nil)
	Bd := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			Ad.Set(i, j, expAug.At(i, j))
		}
		for j := 0; j < m; j++ {
			Bd.Set(i, j, expAug.At(i, n+j))
		}
	}

	s.discCache[key] = discEntry{Ad: Ad, Bd: Bd}

	return Ad, Bd, nil
}
