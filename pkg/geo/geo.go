package geo

import "math"

// EarthRadiusMeters is the WGS84 equatorial radius.
const EarthRadiusMeters = 6378137.0

// Offset moves a coordinate by a metric north/east offset using the
// small-angle approximation. Only valid for offsets on the order of
// hundreds of meters; the formula is part of the output contract and
// must not be swapped for a geodesic one.
func Offset(lat, lng, latOffsetMeters, lngOffsetMeters float64) (float64, float64) {
	dLat := latOffsetMeters / EarthRadiusMeters
	dLng := lngOffsetMeters / (EarthRadiusMeters * math.Cos(lat*math.Pi/180))

	newLat := lat + dLat*180/math.Pi
	newLng := lng + dLng*180/math.Pi
	return newLat, newLng
}

// Distance returns the approximate distance in meters between two
// coordinates, the inverse of the Offset approximation. Good enough for
// arrival-radius checks at quest scale.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180 * EarthRadiusMeters
	dLng := (lng2 - lng1) * math.Pi / 180 * EarthRadiusMeters * math.Cos(lat1*math.Pi/180)
	return math.Hypot(dLat, dLng)
}
