package geocluster

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/geocluster/grid"
	"github.com/hupe1980/geocluster/projection"
	"golang.org/x/sync/singleflight"
)

// DefaultDistance is the pixel distance between cluster representatives
// below which two neighboring groups are merged, used whenever a request
// does not carry its own threshold.
const DefaultDistance = 65

// Admissible request thresholds relative to the default distance.
// Dividing and multiplying keeps the per-threshold table count bounded.
const (
	minThresholdDivisor    = 8
	maxThresholdMultiplier = 4
)

// LengthTable maps each zoom level to the geohash prefix length whose
// cells are just finer than the pixel threshold at that zoom.
type LengthTable [projection.Zooms]int

// LengthCache computes and caches one LengthTable per pixel threshold.
// It is safe for concurrent use; concurrent requests for the same missing
// threshold collapse into a single computation.
type LengthCache struct {
	defaultDistance int
	minThreshold    int
	maxThreshold    int

	mu     sync.RWMutex
	tables map[int]LengthTable
	flight singleflight.Group

	hits     atomic.Int64
	misses   atomic.Int64
	computes atomic.Int64
}

// NewLengthCache creates a cache seeded with the table for the given
// default distance. Requested thresholds outside
// [distance/8, distance*4] are rejected by ForThreshold.
func NewLengthCache(distance int) (*LengthCache, error) {
	if distance <= 0 {
		return nil, &ErrInvalidDefaultDistance{Distance: distance}
	}

	c := &LengthCache{
		defaultDistance: distance,
		minThreshold:    distance / minThresholdDivisor,
		maxThreshold:    distance * maxThresholdMultiplier,
		tables:          make(map[int]LengthTable),
	}

	c.tables[distance] = computeLengthTable(distance)
	c.computes.Add(1)

	return c, nil
}

// DefaultDistance returns the distance the cache was seeded with.
func (c *LengthCache) DefaultDistance() int {
	return c.defaultDistance
}

// ForThreshold returns the length table for the given pixel threshold,
// computing and caching it on first use.
func (c *LengthCache) ForThreshold(threshold int) (LengthTable, error) {
	c.mu.RLock()
	t, ok := c.tables[threshold]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return t, nil
	}

	if threshold < c.minThreshold || threshold > c.maxThreshold {
		return LengthTable{}, &ErrThresholdOutOfRange{
			Threshold: threshold,
			Min:       c.minThreshold,
			Max:       c.maxThreshold,
		}
	}

	c.misses.Add(1)

	v, _, _ := c.flight.Do(strconv.Itoa(threshold), func() (interface{}, error) {
		// A previous flight may have stored the table after our read above.
		c.mu.RLock()
		t, ok := c.tables[threshold]
		c.mu.RUnlock()
		if ok {
			return t, nil
		}

		t = computeLengthTable(threshold)
		c.computes.Add(1)

		c.mu.Lock()
		c.tables[threshold] = t
		c.mu.Unlock()

		return t, nil
	})

	return v.(LengthTable), nil
}

// Len returns the number of cached tables.
func (c *LengthCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

// Stats returns cache counters.
func (c *LengthCache) Stats() (hits, misses, computes int64) {
	return c.hits.Load(), c.misses.Load(), c.computes.Load()
}

// computeLengthTable derives, per zoom, the shortest geohash prefix whose
// cell is smaller than the threshold extent. The threshold in pixels is
// scaled to meters by the zoom resolution, then projected back to degrees
// around the equator where mercator cells are widest.
func computeLengthTable(threshold int) LengthTable {
	var t LengthTable
	for zoom, resolution := range projection.Resolutions() {
		meters := float64(threshold) * resolution
		width, height := projection.Backward(meters, meters)
		t[zoom] = grid.MinLengthForBounds(width, height)
	}
	return t
}
