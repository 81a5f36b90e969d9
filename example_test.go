package geocluster_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/geocluster"
)

// Example_cluster demonstrates clustering points for a map tile zoom level.
func Example_cluster() {
	ctx := context.Background()

	gc, err := geocluster.New[string]()
	if err != nil {
		log.Fatal(err)
	}

	// Three neighboring spots around the San Francisco piers.
	points := []geocluster.Point[string]{
		geocluster.NewPoint(-122.40966796875, 37.77099609375, "museum"),
		geocluster.NewPoint(-122.36572265625, 37.77099609375, "pier"),
		geocluster.NewPoint(-122.36572265625, 37.81494140625, "ferry"),
	}

	groups, err := gc.ClusterPoints(ctx, points, 10)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Groups at zoom 10: %d\n", groups.Len())
	for _, g := range groups.Groups() {
		fmt.Printf("Members: %d, clustered: %t\n", g.Count(), g.Clustered())
	}
	// Output:
	// Groups at zoom 10: 1
	// Members: 3, clustered: true
}

// Example_fluent demonstrates the fluent clustering API with a custom
// threshold.
func Example_fluent() {
	ctx := context.Background()

	gc, err := geocluster.New[int]()
	if err != nil {
		log.Fatal(err)
	}

	points := []geocluster.Point[int]{
		geocluster.NewPoint(-122.4194, 37.7749, 1),
		geocluster.NewPoint(139.6917, 35.6895, 2),
	}

	count, err := gc.Cluster(points).
		Zoom(3).
		Threshold(100).
		Count(ctx)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Found %d clusters\n", count)
	// Output: Found 2 clusters
}

// Example_lengthTable demonstrates inspecting the per-zoom geohash prefix
// lengths for the default pixel distance.
func Example_lengthTable() {
	gc, err := geocluster.New[string]()
	if err != nil {
		log.Fatal(err)
	}

	table, err := gc.LengthTable(gc.DefaultDistance())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Zoom 0: %d, zoom 10: %d\n", table[0], table[10])
	// Output: Zoom 0: 1, zoom 10: 5
}

// Example_geojson demonstrates rendering clusters as GeoJSON features.
func Example_geojson() {
	ctx := context.Background()

	gc, err := geocluster.New[string]()
	if err != nil {
		log.Fatal(err)
	}

	points := []geocluster.Point[string]{
		geocluster.NewPoint(13.405, 52.52, "berlin"),
	}

	fc, err := gc.Cluster(points).Zoom(8).FeatureCollection(ctx)
	if err != nil {
		log.Fatal(err)
	}

	f := fc.Features[0]
	fmt.Printf("count=%v clustered=%v data=%v\n",
		f.Properties["count"], f.Properties["clustered"], f.Properties["data"])
	// Output: count=1 clustered=false data=berlin
}
