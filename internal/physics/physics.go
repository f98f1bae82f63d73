// Package physics provides the stateless helpers the simulation is built on:
// distances, angles, periodic triggers and axis-aligned box tests.
package physics

import (
	"math"
	"math/rand"
)

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Sign returns -1, 0 or +1 according to the sign of n.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// AngleDir returns the heading of the velocity (x, y) in radians.
// Headings pointing left are shifted by π so the result covers the full
// circle, matching the convention used for split missiles.
func AngleDir(x, y float64) float64 {
	dist := math.Sqrt(x*x + y*y)
	if dist == 0 {
		dist = 1
	}
	if x < 0 {
		return math.Asin(-y/dist) + math.Pi
	}
	return math.Asin(y / dist)
}

// RandomInt returns a uniform integer in [0, max). Non-positive max yields 0.
func RandomInt(rng *rand.Rand, max int) int {
	if max <= 0 {
		return 0
	}
	return rng.Intn(max)
}

// Between returns a uniform integer in [min, max).
func Between(rng *rand.Rand, min, max int) int {
	return RandomInt(rng, max-min) + min
}

// Every reports whether frame is a multiple of n (the "every Nth frame"
// trigger). n <= 0 never fires.
func Every(frame uint64, n int) bool {
	if n <= 0 {
		return false
	}
	return frame%uint64(n) == 0
}
