package geocluster

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    clusterCounter   prometheus.Counter
//	    clusterHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCluster(points, clusters int, duration time.Duration, err error) {
//	    p.clusterCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordBucket is called after each bucketing operation.
	// points is the number of input points, buckets the number of occupied
	// cells, duration is the total time taken, err is nil if successful.
	RecordBucket(points, buckets int, duration time.Duration, err error)

	// RecordMerge is called after each neighbor merge pass.
	// absorbed is the number of groups folded into a neighbor.
	RecordMerge(absorbed int, duration time.Duration, err error)

	// RecordCluster is called after each full clustering run.
	// points is the number of input points, clusters the number of
	// resulting groups.
	RecordCluster(points, clusters int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBucket(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordMerge(int, time.Duration, error)        {}
func (NoopMetricsCollector) RecordCluster(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BucketCount       atomic.Int64
	BucketErrors      atomic.Int64
	BucketPoints      atomic.Int64
	MergeCount        atomic.Int64
	MergeErrors       atomic.Int64
	MergeAbsorbed     atomic.Int64
	ClusterCount      atomic.Int64
	ClusterErrors     atomic.Int64
	ClusterTotalNanos atomic.Int64
	ClusterPointsIn   atomic.Int64
	ClusterGroupsOut  atomic.Int64
}

// RecordBucket implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBucket(points, buckets int, duration time.Duration, err error) {
	b.BucketCount.Add(1)
	b.BucketPoints.Add(int64(points))
	if err != nil {
		b.BucketErrors.Add(1)
	}
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(absorbed int, duration time.Duration, err error) {
	b.MergeCount.Add(1)
	b.MergeAbsorbed.Add(int64(absorbed))
	if err != nil {
		b.MergeErrors.Add(1)
	}
}

// RecordCluster implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCluster(points, clusters int, duration time.Duration, err error) {
	b.ClusterCount.Add(1)
	b.ClusterTotalNanos.Add(duration.Nanoseconds())
	b.ClusterPointsIn.Add(int64(points))
	b.ClusterGroupsOut.Add(int64(clusters))
	if err != nil {
		b.ClusterErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BucketCount:      b.BucketCount.Load(),
		BucketErrors:     b.BucketErrors.Load(),
		BucketPoints:     b.BucketPoints.Load(),
		MergeCount:       b.MergeCount.Load(),
		MergeErrors:      b.MergeErrors.Load(),
		MergeAbsorbed:    b.MergeAbsorbed.Load(),
		ClusterCount:     b.ClusterCount.Load(),
		ClusterErrors:    b.ClusterErrors.Load(),
		ClusterAvgNanos:  b.getAvgClusterNanos(),
		ClusterPointsIn:  b.ClusterPointsIn.Load(),
		ClusterGroupsOut: b.ClusterGroupsOut.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgClusterNanos() int64 {
	count := b.ClusterCount.Load()
	if count == 0 {
		return 0
	}
	return b.ClusterTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BucketCount      int64
	BucketErrors     int64
	BucketPoints     int64
	MergeCount       int64
	MergeErrors      int64
	MergeAbsorbed    int64
	ClusterCount     int64
	ClusterErrors    int64
	ClusterAvgNanos  int64
	ClusterPointsIn  int64
	ClusterGroupsOut int64
}
