// Package geocluster provides server-side clustering of geographic points
// for map display.
//
// Points are grouped on the geohash grid, one prefix length per zoom level,
// then groups in adjacent cells are merged when their representatives would
// render within a pixel distance of each other:
//
//   - Generic payloads: Point[T] carries arbitrary data through clustering
//   - Zoom-aware grid: per-zoom geohash prefix lengths derived from the
//     spherical mercator resolution table
//   - Latitude-corrected pixel distances between cluster representatives
//   - Length tables computed once per threshold and cached
//   - GeoJSON output via github.com/paulmach/orb/geojson
//
// # Quick Start
//
//	ctx := context.Background()
//	gc, err := geocluster.New[string]()
//	if err != nil {
//	    panic(err)
//	}
//
//	points := []geocluster.Point[string]{
//	    geocluster.NewPoint(-122.4194, 37.7749, "sf"),
//	    geocluster.NewPoint(-122.4180, 37.7755, "mission"),
//	    geocluster.NewPoint(139.6917, 35.6895, "tokyo"),
//	}
//
//	groups, err := gc.ClusterPoints(ctx, points, 10)
//	if err != nil {
//	    panic(err)
//	}
//	for _, g := range groups.Groups() {
//	    fmt.Println(g.Geometry(), g.Count())
//	}
//
// Or with the fluent API:
//
//	groups, err := gc.Cluster(points).
//	    Zoom(10).
//	    Threshold(100).
//	    Execute(ctx)
//
// # Thresholds
//
// The default pixel distance is 65. Requests may override it within
// [default/8, default*4]; each distinct threshold gets its own cached
// per-zoom table of geohash prefix lengths. The override controls how
// points fall into cells; the merge pass always uses the default
// distance.
package geocluster

import (
	"context"
	"time"

	"github.com/hupe1980/geocluster/grid"
	"github.com/hupe1980/geocluster/projection"
)

// Geocluster groups geographic points into zoom-dependent clusters.
// It is safe for concurrent use.
type Geocluster[T any] struct {
	lengths *LengthCache
	metrics MetricsCollector
	logger  *Logger
}

// New creates a clustering engine.
func New[T any](optFns ...Option) (*Geocluster[T], error) {
	opts := applyOptions(optFns)

	lengths, err := NewLengthCache(opts.defaultDistance)
	if err != nil {
		return nil, err
	}

	return &Geocluster[T]{
		lengths: lengths,
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

// DefaultDistance returns the pixel distance used when a request does not
// carry its own threshold.
func (gc *Geocluster[T]) DefaultDistance() int {
	return gc.lengths.DefaultDistance()
}

// LengthTable returns the per-zoom geohash prefix lengths for the given
// pixel threshold, computing and caching the table on first use.
func (gc *Geocluster[T]) LengthTable(threshold int) (LengthTable, error) {
	return gc.lengths.ForThreshold(threshold)
}

// Bucket groups points into geohash cells at the given zoom without
// merging across cell boundaries. Points in the same cell always end up
// in the same group, whatever their exact distance.
func (gc *Geocluster[T]) Bucket(ctx context.Context, points []Point[T], zoom, threshold int) (*OrderedGroups[T], error) {
	start := time.Now()
	groups, err := gc.bucket(points, zoom, threshold)
	duration := time.Since(start)
	err = translateError(err)
	buckets := 0
	if groups != nil {
		buckets = groups.Len()
	}
	gc.metrics.RecordBucket(len(points), buckets, duration, err)
	gc.logger.LogBucket(ctx, zoom, len(points), buckets, err)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (gc *Geocluster[T]) bucket(points []Point[T], zoom, threshold int) (*OrderedGroups[T], error) {
	if zoom < 0 || zoom > projection.MaxZoom {
		return nil, &ErrZoomOutOfRange{Zoom: zoom, Min: 0, Max: projection.MaxZoom}
	}

	table, err := gc.lengths.ForThreshold(threshold)
	if err != nil {
		return nil, err
	}
	length := table[zoom]

	byKey := make(map[string]*PointGroup[T])
	for _, p := range points {
		key := grid.Prefix(p.Location, length)
		if g, ok := byKey[key]; ok {
			g.Add(p)
		} else {
			byKey[key] = NewPointGroup(p)
		}
	}

	return newOrderedGroups(byKey), nil
}

// Merge runs the neighbor merge pass over bucketed groups at the given
// zoom, using the engine's default pixel distance. It returns the number
// of groups absorbed into a neighbor.
func (gc *Geocluster[T]) Merge(ctx context.Context, groups *OrderedGroups[T], zoom int) (int, error) {
	start := time.Now()
	absorbed, err := groups.mergeNeighbors(zoom, gc.lengths.DefaultDistance())
	duration := time.Since(start)
	err = translateError(err)
	gc.metrics.RecordMerge(absorbed, duration, err)
	gc.logger.LogMerge(ctx, zoom, absorbed, err)
	return absorbed, err
}

// ClusterPoints buckets points at the given zoom with the default
// threshold and merges groups across neighboring cells.
func (gc *Geocluster[T]) ClusterPoints(ctx context.Context, points []Point[T], zoom int) (*OrderedGroups[T], error) {
	return gc.clusterPoints(ctx, points, zoom, gc.lengths.DefaultDistance())
}

func (gc *Geocluster[T]) clusterPoints(ctx context.Context, points []Point[T], zoom, threshold int) (*OrderedGroups[T], error) {
	start := time.Now()
	groups, err := gc.clusterGroups(points, zoom, threshold)
	duration := time.Since(start)
	err = translateError(err)
	clusters := 0
	if groups != nil {
		clusters = groups.Len()
	}
	gc.metrics.RecordCluster(len(points), clusters, duration, err)
	gc.logger.LogCluster(ctx, zoom, len(points), clusters, err)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (gc *Geocluster[T]) clusterGroups(points []Point[T], zoom, threshold int) (*OrderedGroups[T], error) {
	groups, err := gc.bucket(points, zoom, threshold)
	if err != nil {
		return nil, err
	}

	if _, err := groups.mergeNeighbors(zoom, gc.lengths.DefaultDistance()); err != nil {
		return nil, err
	}

	return groups, nil
}

// Stats is a snapshot of engine counters.
type Stats struct {
	DefaultDistance int
	LengthTables    int
	CacheHits       int64
	CacheMisses     int64
	CacheComputes   int64
}

// Stats returns statistics about the engine's length table cache.
func (gc *Geocluster[T]) Stats() Stats {
	hits, misses, computes := gc.lengths.Stats()
	return Stats{
		DefaultDistance: gc.lengths.DefaultDistance(),
		LengthTables:    gc.lengths.Len(),
		CacheHits:       hits,
		CacheMisses:     misses,
		CacheComputes:   computes,
	}
}
