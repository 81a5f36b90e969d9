package testutil

import (
	"math/rand"
	"sync"

	"github.com/paulmach/orb"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates points uniformly distributed over bound.
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) UniformPoints(num int, bound orb.Bound) []orb.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]orb.Point, num)
	for i := range points {
		points[i] = orb.Point{
			bound.Min[0] + r.rand.Float64()*(bound.Max[0]-bound.Min[0]),
			bound.Min[1] + r.rand.Float64()*(bound.Max[1]-bound.Min[1]),
		}
	}

	return points
}

// ClusteredPoints generates points scattered around the given centers,
// cycling through the centers round-robin. spread is the full extent of
// the scatter in degrees on each axis.
func (r *RNG) ClusteredPoints(num int, centers []orb.Point, spread float64) []orb.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]orb.Point, num)
	for i := range points {
		c := centers[i%len(centers)]
		points[i] = orb.Point{
			c[0] + (r.rand.Float64()-0.5)*spread,
			c[1] + (r.rand.Float64()-0.5)*spread,
		}
	}

	return points
}
