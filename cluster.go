// Package geocluster provides server-side clustering of geographic points.
//
// This file implements a fluent clustering API.
package geocluster

import (
	"context"

	"github.com/paulmach/orb/geojson"
)

// Cluster creates a new fluent cluster builder for the given points.
//
// Example:
//
//	groups, err := gc.Cluster(points).
//	    Zoom(10).
//	    Threshold(100).
//	    Execute(ctx)
//
//	// Or straight to GeoJSON:
//	fc, err := gc.Cluster(points).Zoom(10).FeatureCollection(ctx)
func (gc *Geocluster[T]) Cluster(points []Point[T]) *ClusterBuilder[T] {
	return &ClusterBuilder[T]{
		gc:        gc,
		points:    points,
		zoom:      0, // Whole world
		threshold: gc.lengths.DefaultDistance(),
	}
}

// ClusterBuilder is a fluent builder for constructing clustering requests.
type ClusterBuilder[T any] struct {
	gc        *Geocluster[T]
	points    []Point[T]
	zoom      int
	threshold int
}

// Zoom sets the zoom level to cluster for.
// Must be within [0, projection.MaxZoom].
func (cb *ClusterBuilder[T]) Zoom(zoom int) *ClusterBuilder[T] {
	cb.zoom = zoom
	return cb
}

// Threshold overrides the pixel threshold used to pick cell sizes.
// Must be within [default/8, default*4]. Smaller thresholds bucket on a
// finer grid; the merge distance itself stays at the engine default.
func (cb *ClusterBuilder[T]) Threshold(threshold int) *ClusterBuilder[T] {
	cb.threshold = threshold
	return cb
}

// Execute runs the clustering and returns the grouped result.
func (cb *ClusterBuilder[T]) Execute(ctx context.Context) (*OrderedGroups[T], error) {
	return cb.gc.clusterPoints(ctx, cb.points, cb.zoom, cb.threshold)
}

// MustExecute runs the clustering, panicking on error.
// Use this only in tests or when you're certain the request is valid.
func (cb *ClusterBuilder[T]) MustExecute(ctx context.Context) *OrderedGroups[T] {
	groups, err := cb.Execute(ctx)
	if err != nil {
		panic(err)
	}
	return groups
}

// Groups runs the clustering and returns the groups in cell key order.
func (cb *ClusterBuilder[T]) Groups(ctx context.Context) ([]*PointGroup[T], error) {
	groups, err := cb.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return groups.Groups(), nil
}

// Count executes the clustering and returns the number of groups.
func (cb *ClusterBuilder[T]) Count(ctx context.Context) (int, error) {
	groups, err := cb.Execute(ctx)
	if err != nil {
		return 0, err
	}
	return groups.Len(), nil
}

// FeatureCollection executes the clustering and renders the groups as a
// GeoJSON feature collection.
func (cb *ClusterBuilder[T]) FeatureCollection(ctx context.Context) (*geojson.FeatureCollection, error) {
	groups, err := cb.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return FeatureCollection(groups.Groups()), nil
}
