package distance

import (
	"math"
	"testing"

	"github.com/DIMO-Network/iss-distance/services/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func satellite(lat, lon, alt float64) geo.Point {
	return geo.Point{Name: "iss", ID: 25544, Latitude: lat, Longitude: lon, Altitude: alt, Units: "kilometers"}
}

func TestGreatCircleAndAltitudeDistance_AltitudeOnly(t *testing.T) {
	iss := satellite(0, 0, 400)
	user := geo.UserPoint(0, 0)

	d := GreatCircleAndAltitudeDistance(iss, user)
	require.InDelta(t, 400.0, d, 1e-9)
	require.Equal(t, 400.0, Round2(d))
}

func TestGreatCircleAndAltitudeDistance_QuarterCircumference(t *testing.T) {
	iss := satellite(0, 0, 0)
	user := geo.UserPoint(0, 90)

	d := GreatCircleAndAltitudeDistance(iss, user)
	require.InDelta(t, math.Pi/2*EarthRadiusKm, d, 1e-6)
	require.Equal(t, 10007.54, Round2(d))
}

func TestGreatCircleAndAltitudeDistance_CoincidentGroundPoints(t *testing.T) {
	for _, p := range [][2]float64{{0, 0}, {39.7532, -105.02166}, {-33.9, 151.2}} {
		ref := satellite(p[0], p[1], 0)
		obs := geo.UserPoint(p[0], p[1])

		// The legacy latitude delta is only zero at the equator.
		if p[0] == 0 {
			require.Zero(t, GreatCircleAndAltitudeDistance(ref, obs))
		}
		require.Zero(t, SlantDistance(ref, obs, Haversine))
	}
}

func TestGreatCircleAndAltitudeDistance_KeepsLegacyLatitudeDelta(t *testing.T) {
	iss := satellite(51.5, -0.1, 420)
	user := geo.UserPoint(40.7, -74.0)

	// London to New York is ~5573 km on the surface; the legacy delta
	// overshoots and that is what the tracker has always shown.
	require.Equal(t, 16457.79, Round2(GreatCircleAndAltitudeDistance(iss, user)))
	require.InDelta(t, 5572.80, Haversine(iss, user), 0.01)
}

func TestLegacyHaversine_ClampsOutOfRangeTerm(t *testing.T) {
	// The raw haversine term is ~1.12 here, which would produce NaN.
	ref := satellite(60, 0, 0)
	obs := geo.UserPoint(60, 179)

	d := LegacyHaversine(ref, obs)
	require.False(t, math.IsNaN(d))
	require.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

func TestDistance_NonNegative(t *testing.T) {
	lats := []float64{-90, -45.5, 0, 12.3, 51.6, 90}
	lons := []float64{-180, -97.1, 0, 33.3, 179.9}
	alts := []float64{0, 0.5, 408, 35786}

	for _, rlat := range lats {
		for _, rlon := range lons {
			for _, alt := range alts {
				ref := satellite(rlat, rlon, alt)
				obs := geo.UserPoint(rlat/2, -rlon)

				for _, f := range []SurfaceFunc{LegacyHaversine, Haversine} {
					d := SlantDistance(ref, obs, f)
					assert.False(t, math.IsNaN(d))
					assert.GreaterOrEqual(t, d, 0.0)
					assert.GreaterOrEqual(t, d, alt)
				}
			}
		}
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	a := satellite(39.7532, -105.02166, 0)
	b := satellite(-33.9, 151.2, 0)

	require.InDelta(t, Haversine(a, b), Haversine(b, a), 1e-9)
}

func TestLegacyHaversine_SymmetricAtEqualLatitudes(t *testing.T) {
	a := satellite(23.5, 10, 0)
	b := satellite(23.5, -70, 0)

	require.InDelta(t, LegacyHaversine(a, b), LegacyHaversine(b, a), 1e-9)
}

func TestGreatCircleAndAltitudeDistance_AltitudeOnlyOnReference(t *testing.T) {
	high := satellite(0, 0, 400)
	ground := satellite(0, 10, 0)

	// Only the reference altitude enters the triangle.
	require.Greater(t, GreatCircleAndAltitudeDistance(high, ground), GreatCircleAndAltitudeDistance(ground, high))
}

func TestGreatCircleAndAltitudeDistance_Deterministic(t *testing.T) {
	iss := satellite(10, 20, 408)
	user := geo.UserPoint(10, 25)

	first := GreatCircleAndAltitudeDistance(iss, user)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, GreatCircleAndAltitudeDistance(iss, user))
	}
}
