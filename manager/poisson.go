package manager

import (
	"math"
	"math/rand"
)

// SpawnRegion is the rectangle in phase-plane coordinates candidates are
// drawn from.
type SpawnRegion struct {
	ThetaMin, ThetaMax       float64
	ThetaDotMin, ThetaDotMax float64
}

func (r SpawnRegion) valid() bool {
	return r.ThetaMin < r.ThetaMax && r.ThetaDotMin < r.ThetaDotMax
}

const poissonMaxAttemptsPerPoint = 30

// poissonDiskSample draws points inside region such that no two points are
// closer than radius, using Bridson's algorithm: a background grid of cell
// size radius/√2 for O(1) neighbor rejection checks, an active list seeded
// with one random point, and up to poissonMaxAttemptsPerPoint tries per
// active point before retiring it.
func poissonDiskSample(region SpawnRegion, radius float64, rng *rand.Rand) []float64XY {
	if !region.valid() || radius <= 0 {
		return nil
	}

	cellSize := radius / math.Sqrt2
	width := region.ThetaMax - region.ThetaMin
	height := region.ThetaDotMax - region.ThetaDotMin
	gridW := int(math.Ceil(width/cellSize)) + 1
	gridH := int(math.Ceil(height/cellSize)) + 1

	grid := make([]int, gridW*gridH) // stores 1-based index into samples; 0 = empty
	cellOf := func(p float64XY) (int, int) {
		cx := int((p.X - region.ThetaMin) / cellSize)
		cy := int((p.Y - region.ThetaDotMin) / cellSize)
		return cx, cy
	}

	var samples []float64XY
	var active []int

	first := float64XY{
		X: region.ThetaMin + rng.Float64()*width,
		Y: region.ThetaDotMin + rng.Float64()*height,
	}
	samples = append(samples, first)
	active = append(active, 0)
	cx, cy := cellOf(first)
	grid[cy*gridW+cx] = 1

	for len(active) > 0 {
		idx := rng.Intn(len(active))
		base := samples[active[idx]]

		placed := false
		for attempt := 0; attempt < poissonMaxAttemptsPerPoint; attempt++ {
			ang := rng.Float64() * 2 * math.Pi
			dist := radius * (1 + rng.Float64()) // in [radius, 2*radius)
			cand := float64XY{X: base.X + dist*math.Cos(ang), Y: base.Y + dist*math.Sin(ang)}

			if cand.X < region.ThetaMin || cand.X >= region.ThetaMax || cand.Y < region.ThetaDotMin || cand.Y >= region.ThetaDotMax {
				continue
			}

			ccx, ccy := cellOf(cand)
			if !farFromNeighbors(cand, grid, samples, ccx, ccy, gridW, gridH, radius) {
				continue
			}

			samples = append(samples, cand)
			grid[ccy*gridW+ccx] = len(samples)
			active = append(active, len(samples)-1)
			placed = true
			break
		}

		if !placed {
			active = append(active[:idx], active[idx+1:]...)
		}
	}

	return samples
}

type float64XY struct{ X, Y float64 }

func farFromNeighbors(p float64XY, grid []int, samples []float64XY, cx, cy, gridW, gridH int, radius float64) bool {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx < 0 || ny < 0 || nx >= gridW || ny >= gridH {
				continue
			}
			occupant := grid[ny*gridW+nx]
			if occupant == 0 {
				continue
			}
			other := samples[occupant-1]
			ddx := p.X - other.X
			ddy := p.Y - other.Y
			if ddx*ddx+ddy*ddy < radius*radius {
				return false
			}
		}
	}
	return true
}
