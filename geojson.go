package geocluster

import (
	"github.com/paulmach/orb/geojson"
)

// GeoJSON property names attached to rendered groups.
const (
	PropertyCount     = "count"
	PropertyClustered = "clustered"
	PropertyData      = "data"
)

// Feature renders the group as a GeoJSON point feature. The geometry is
// the group representative; properties carry the member count and whether
// the group is a real cluster. Single-point groups also carry the member
// payload under "data".
func (g *PointGroup[T]) Feature() *geojson.Feature {
	f := geojson.NewFeature(g.geometry)
	f.Properties[PropertyCount] = g.Count()
	f.Properties[PropertyClustered] = g.Clustered()
	if !g.Clustered() && !g.Empty() {
		f.Properties[PropertyData] = g.members[0].Data
	}
	return f
}

// FeatureCollection renders groups as a GeoJSON feature collection, one
// point feature per group.
func FeatureCollection[T any](groups []*PointGroup[T]) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, g := range groups {
		fc.Append(g.Feature())
	}
	return fc
}
