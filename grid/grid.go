// Package grid provides geohash cell geometry and adjacency helpers on top
// of the string geohash encoding.
package grid

import (
	"github.com/mmcloughlin/geohash"
	"github.com/paulmach/orb"
)

// MaxPrecision is the longest prefix length the grid works with, the limit
// of the 12-character string geohash encoding.
const MaxPrecision = 12

// Cell extents per prefix length. Each additional character splits a cell
// into 32 subcells, alternating 8x4 and 4x8 in lon/lat.
var (
	lonWidths  = buildExtents(360, 8, 4)
	latHeights = buildExtents(180, 4, 8)
)

func buildExtents(whole, odd, even float64) [MaxPrecision + 1]float64 {
	var t [MaxPrecision + 1]float64
	t[0] = whole
	for i := 1; i <= MaxPrecision; i++ {
		if i%2 == 1 {
			t[i] = t[i-1] / odd
		} else {
			t[i] = t[i-1] / even
		}
	}
	return t
}

// MinLengthForBounds returns the smallest prefix length whose cell is
// strictly smaller than the given lon/lat extents in degrees. Lengths that
// would exceed MaxPrecision are capped at MaxPrecision.
func MinLengthForBounds(width, height float64) int {
	for n := 1; n < MaxPrecision; n++ {
		if lonWidths[n] < width && latHeights[n] < height {
			return n
		}
	}
	return MaxPrecision
}

// LonWidth returns the longitude extent in degrees of a cell at the given
// prefix length.
func LonWidth(n int) float64 { return lonWidths[n] }

// LatHeight returns the latitude extent in degrees of a cell at the given
// prefix length.
func LatHeight(n int) float64 { return latHeights[n] }

// Prefix returns the geohash cell key of length n containing p.
// n must be in [1, MaxPrecision]; the caller is responsible for the range.
func Prefix(p orb.Point, n int) string {
	return geohash.EncodeWithPrecision(p.Lat(), p.Lon(), uint(n))
}

// Center returns the center point of a cell.
func Center(hash string) orb.Point {
	lat, lng := geohash.BoundingBox(hash).Center()
	return orb.Point{lng, lat}
}

// ForwardNeighbors returns the northwest, north, northeast and east
// neighbors of a cell. When cells are visited in ascending key order these
// four directions cover every adjacent cell that can still appear after the
// current key.
func ForwardNeighbors(hash string) [4]string {
	return [4]string{
		geohash.Neighbor(hash, geohash.NorthWest),
		geohash.Neighbor(hash, geohash.North),
		geohash.Neighbor(hash, geohash.NorthEast),
		geohash.Neighbor(hash, geohash.East),
	}
}
