// Package geocluster clusters geographic points for map display, one cluster
// marker instead of many overlapping ones.
//
// Clustering is zoom-aware: points are bucketed on the geohash grid at a
// prefix length matched to the zoom level's meters-per-pixel resolution, then
// groups in adjacent cells are merged when their representative points would
// render within a pixel distance of each other.
//
// # Pipeline
//
// Each clustering run is one pass over the input:
//
//	points, _ := ..., zoom := 10
//	gc, _ := geocluster.New[string]()
//	groups, _ := gc.ClusterPoints(ctx, points, zoom)  // bucket + merge
//
// Bucketing and merging are also available separately:
//
//	groups, _ := gc.Bucket(ctx, points, zoom, threshold)  // cells only
//	absorbed, _ := gc.Merge(ctx, groups, zoom)            // neighbor pass
//
// The merge pass visits cells in ascending geohash order and checks only the
// northwest, north, northeast and east neighbors of each cell, so every
// adjacent pair is examined exactly once. It does not compute a transitive
// closure: a group absorbed mid-pass no longer attracts neighbors of its own.
//
// # Thresholds and Length Tables
//
// The pixel distance below which two groups merge defaults to 65 and is set
// per engine with WithDefaultDistance. Requests may pick a different
// threshold for bucketing within [default/8, default*4]; anything outside
// that band is rejected so the per-threshold table cache stays bounded.
// The per-zoom geohash prefix lengths for a threshold are computed once and
// cached for the life of the engine.
//
// # Results
//
//	for _, g := range groups.Groups() {
//	    fmt.Println(g.Geometry(), g.Count(), g.Clustered())
//	}
//
// A group's geometry is the count-weighted centroid of its members. Caller
// payloads ride along on each Point and come back via Members. Groups render
// to GeoJSON point features with FeatureCollection or PointGroup.Feature.
//
// # Concurrency
//
// An engine is safe for concurrent clustering calls. An OrderedGroups
// collection belongs to one request and must not be mutated concurrently.
package geocluster
