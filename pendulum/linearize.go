package pendulum

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// linRoundPrecision is the θ₀ rounding grid for the Linearize memo key.
const linRoundPrecision = 1e-6

func roundTo(x, precision float64) float64 {
	return math.Round(x/precision) * precision
}

// Linearize returns the continuous-time state matrices A, B of the pendulum
// linearized around theta:
//
//	A = [[0, 1], [-(g/ℓ)·cos θ, −d]],  B = [[0], [1]].
//
// Results are memoized on θ rounded to 1e-6; callers must not mutate the
// returned matrices (they are shared across calls with the same key).
func (s *System) Linearize(theta float64) (*mat.Dense, *mat.Dense, error) {
	if s == nil {
		return nil, nil, ErrNilSystem
	}
	if s.Length == 0 {
		return nil, nil, ErrZeroLength
	}

	key := roundTo(theta, linRoundPrecision)

	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.linCache[key]; ok {
		return entry.A, entry.B, nil
	}

	a21 := -(s.Gravity / s.Length) * math.Cos(key)
	A := mat.NewDense(2, 2, []float64{
		0, 1,
		a21, -s.Damping,
	})
	B := mat.NewDense(2, 1, []float64{
		0,
		1,
	})

	s.linCache[key] = linEntry{A: A, B: B}

	return A, B, nil
}
