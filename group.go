package geocluster

import (
	"slices"

	"github.com/paulmach/orb"
)

// Point is a geographic location with an attached payload.
// The payload travels with the point through bucketing and merging and
// comes back out via PointGroup.Members.
type Point[T any] struct {
	Location orb.Point
	Data     T
}

// NewPoint creates a Point at the given longitude and latitude.
func NewPoint[T any](lon, lat float64, data T) Point[T] {
	return Point[T]{
		Location: orb.Point{lon, lat},
		Data:     data,
	}
}

// PointGroup is a cluster of points sharing a grid cell. Its geometry is
// the running centroid of all members, weighted by member count on every
// merge, so the representative point stays where the mass is.
type PointGroup[T any] struct {
	geometry orb.Point
	members  []Point[T]
}

// NewPointGroup creates a group seeded with a single point. The group
// geometry starts at the point location.
func NewPointGroup[T any](p Point[T]) *PointGroup[T] {
	return &PointGroup[T]{
		geometry: p.Location,
		members:  []Point[T]{p},
	}
}

// Add folds a single point into the group and shifts the centroid by one
// member's weight.
func (g *PointGroup[T]) Add(p Point[T]) {
	g.merge(p.Location, 1)
	g.members = append(g.members, p)
}

// Absorb folds another group into this one. The centroid moves to the
// count-weighted mean of both geometries. The other group is left
// untouched; the caller is expected to discard it.
func (g *PointGroup[T]) Absorb(other *PointGroup[T]) {
	g.merge(other.geometry, other.Count())
	g.members = append(g.members, other.members...)
}

func (g *PointGroup[T]) merge(p orb.Point, weight int) {
	n := len(g.members)
	total := float64(n + weight)
	g.geometry[0] = (g.geometry[0]*float64(n) + p[0]*float64(weight)) / total
	g.geometry[1] = (g.geometry[1]*float64(n) + p[1]*float64(weight)) / total
}

// Geometry returns the representative point of the group.
func (g *PointGroup[T]) Geometry() orb.Point {
	return g.geometry
}

// Count returns the number of members.
func (g *PointGroup[T]) Count() int {
	return len(g.members)
}

// Members returns a copy of the member points in insertion order.
func (g *PointGroup[T]) Members() []Point[T] {
	return slices.Clone(g.members)
}

// Clustered reports whether the group holds more than one point.
func (g *PointGroup[T]) Clustered() bool {
	return len(g.members) > 1
}

// Empty reports whether the group holds no points.
func (g *PointGroup[T]) Empty() bool {
	return len(g.members) == 0
}
