package distance

import (
	"math"

	"github.com/DIMO-Network/iss-distance/services/geo"
)

const (
	EarthRadiusKm = 6371 // mean radius of the earth in kilometers.
)

// SurfaceFunc computes the distance in kilometers between two points along
// the surface of the Earth, ignoring altitude.
type SurfaceFunc func(reference, observer geo.Point) float64

// degreesToRadians converts from degrees to radians.
func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}

// LegacyHaversine is the surface term the tracker has always used. The
// latitude delta subtracts the reference latitude in radians from the
// observer latitude in degrees. Longitudes are handled normally.
//
// The skewed delta can push the haversine term above 1, where the raw
// formula yields NaN. Here the term is clamped instead, so such pairs come
// out as half the Earth's circumference (π·6371 km). That is the only place
// the result deviates from the formula as written.
func LegacyHaversine(reference, observer geo.Point) float64 {
	lat1 := degreesToRadians(reference.Latitude)
	lat2 := degreesToRadians(observer.Latitude)

	diffLat := observer.Latitude - lat1
	diffLon := degreesToRadians(observer.Longitude - reference.Longitude)

	return EarthRadiusKm * centralAngle(lat1, lat2, diffLat, diffLon)
}

// Haversine is the textbook great-circle distance with both latitudes
// normalized to radians before taking the delta.
func Haversine(reference, observer geo.Point) float64 {
	lat1 := degreesToRadians(reference.Latitude)
	lat2 := degreesToRadians(observer.Latitude)

	diffLat := lat2 - lat1
	diffLon := degreesToRadians(observer.Longitude - reference.Longitude)

	return EarthRadiusKm * centralAngle(lat1, lat2, diffLat, diffLon)
}

func centralAngle(lat1, lat2, diffLat, diffLon float64) float64 {
	a := math.Pow(math.Sin(diffLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(diffLon/2), 2)

	// a leaves [0, 1] only through the legacy delta; clamp so the result
	// stays a number.
	a = math.Min(math.Max(a, 0), 1)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// SlantDistance treats the reference altitude and the surface distance as the
// legs of a right triangle and returns the hypotenuse in kilometers.
func SlantDistance(reference, observer geo.Point, surface SurfaceFunc) float64 {
	d := surface(reference, observer)
	return math.Sqrt(reference.Altitude*reference.Altitude + d*d)
}

// GreatCircleAndAltitudeDistance is the straight-line distance in kilometers
// from a ground observer to an elevated reference point such as a satellite.
func GreatCircleAndAltitudeDistance(reference, observer geo.Point) float64 {
	return SlantDistance(reference, observer, LegacyHaversine)
}
