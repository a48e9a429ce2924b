package tree

import "github.com/vgunyavoy/sporegraph/sporelogic"

// QuadrilateralArea returns the absolute area (shoelace formula) of the
// polygon formed by pts in order; on the 4 mean points it is the quantity
// the pair optimizer maximizes.
func QuadrilateralArea(pts []sporelogic.Point2D) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i].Theta*pts[j].ThetaDot - pts[j].Theta*pts[i].ThetaDot
	}

	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
