// Package projection provides the spherical mercator resolution table and
// the inverse projection used to turn pixel thresholds into degree extents.
package projection

import (
	"math"

	"github.com/paulmach/orb"
)

const radToDeg = 180 / math.Pi

// Backward converts spherical mercator meters to longitude and latitude
// degrees. The projection sphere radius is orb.EarthRadius (EPSG:3857).
func Backward(x, y float64) (lon, lat float64) {
	lon = x * radToDeg / orb.EarthRadius
	lat = (math.Pi/2 - 2*math.Atan(math.Exp(-y/orb.EarthRadius))) * radToDeg
	return lon, lat
}
