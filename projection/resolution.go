package projection

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const (
	// MaxZoom is the deepest zoom level the resolution table covers.
	MaxZoom = 30

	// Zooms is the number of zoom levels, 0 through MaxZoom inclusive.
	Zooms = MaxZoom + 1

	// TilePixels is the width and height of a map tile in pixels.
	TilePixels = 256

	// MaxResolution is the meters per pixel at zoom 0, one tile spanning the
	// full equatorial circumference.
	MaxResolution = math.Pi * 2 * orb.EarthRadius / TilePixels
)

// ErrZoomOutOfRange indicates a zoom level outside [0, MaxZoom].
type ErrZoomOutOfRange struct {
	Zoom int
}

func (e *ErrZoomOutOfRange) Error() string {
	return fmt.Sprintf("zoom %d out of range [0, %d]", e.Zoom, MaxZoom)
}

var resolutions = buildResolutions()

func buildResolutions() [Zooms]float64 {
	var table [Zooms]float64
	res := float64(MaxResolution)
	for zoom := range table {
		table[zoom] = res
		res /= 2
	}
	return table
}

// Resolution returns the meters per pixel at the given zoom level.
func Resolution(zoom int) (float64, error) {
	if zoom < 0 || zoom > MaxZoom {
		return 0, &ErrZoomOutOfRange{Zoom: zoom}
	}
	return resolutions[zoom], nil
}

// Resolutions returns a copy of the full meters-per-pixel table.
func Resolutions() [Zooms]float64 {
	return resolutions
}
