// pkg/geodesy/distance.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geodesy

import gomath "math"

// meanEarthRadiusMeters is the mean radius of the Earth, used as the
// sphere radius for the haversine formula below.
const meanEarthRadiusMeters = 6371000

// Distance returns the great-circle distance between a and b in
// kilometres, via the haversine formula on a sphere of mean Earth
// radius. Altitude is ignored for edge weighting (see Location).
//
// https://www.movable-type.co.uk/scripts/latlong.html
//
// Distance is commutative up to floating-point rounding, returns 0 for
// identical coordinates, and is finite for all valid Locations.
func Distance(a, b Location) float32 {
	rad := func(d float32) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(a.Latitude), rad(a.Longitude)
	lat2, lon2 := rad(b.Latitude), rad(b.Longitude)
	dlat, dlon := lat2-lat1, lon2-lon1

	sinDLat2 := gomath.Sin(dlat / 2)
	sinDLon2 := gomath.Sin(dlon / 2)
	h := sinDLat2*sinDLat2 + gomath.Cos(lat1)*gomath.Cos(lat2)*sinDLon2*sinDLon2
	c := 2 * gomath.Atan2(gomath.Sqrt(h), gomath.Sqrt(1-h))

	meters := meanEarthRadiusMeters * c
	return float32(meters / 1000)
}
