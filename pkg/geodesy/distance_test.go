// pkg/geodesy/distance_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package geodesy

import (
	"math"
	"testing"
)

func TestDistanceIdentical(t *testing.T) {
	sf := Location{Latitude: 37.7749, Longitude: -122.4194}
	if d := Distance(sf, sf); d != 0 {
		t.Errorf("Distance(sf, sf) = %v, expected 0", d)
	}
}

func TestDistanceCommutative(t *testing.T) {
	a := Location{Latitude: 37.777843, Longitude: -122.468207}
	b := Location{Latitude: 37.780596, Longitude: -122.434904}

	ab := Distance(a, b)
	ba := Distance(b, a)
	if math.Abs(float64(ab-ba)) > 1e-3 {
		t.Errorf("Distance not commutative: %v vs %v", ab, ba)
	}
}

func TestDistanceFinite(t *testing.T) {
	sf := Location{Latitude: 37.7749, Longitude: -122.4194}
	nyc := Location{Latitude: 40.738820, Longitude: -73.990440}

	d := Distance(sf, nyc)
	if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		t.Fatalf("Distance(sf, nyc) = %v, expected finite", d)
	}
	// Roughly 4130km by great-circle distance.
	if d < 4000 || d > 4300 {
		t.Errorf("Distance(sf, nyc) = %v, expected ~4130km", d)
	}
}

func TestDistanceNonNegative(t *testing.T) {
	locs := []Location{
		{Latitude: 37.777843, Longitude: -122.468207},
		{Latitude: 37.778339, Longitude: -122.460395},
		{Latitude: 37.780596, Longitude: -122.434904},
		{Latitude: 37.774397, Longitude: -122.445366},
	}
	for _, a := range locs {
		for _, b := range locs {
			if d := Distance(a, b); d < 0 {
				t.Errorf("Distance(%v, %v) = %v, expected non-negative", a, b, d)
			}
		}
	}
}

func TestNewLocationRejectsNaN(t *testing.T) {
	if _, err := NewLocation(float32(math.NaN()), 0, 0); err == nil {
		t.Error("expected error for NaN latitude")
	}
}

func TestNewLocationRejectsOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		name          string
		lat, lon, alt float32
	}{
		{"lat too high", 91, 0, 0},
		{"lat too low", -91, 0, 0},
		{"lon too high", 0, 181, 0},
		{"lon too low", 0, -181, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewLocation(tc.lat, tc.lon, tc.alt); err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
		})
	}
}

func TestNewLocationAccepts(t *testing.T) {
	loc, err := NewLocation(37.7749, -122.4194, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Latitude != 37.7749 {
		t.Errorf("Latitude = %v, expected 37.7749", loc.Latitude)
	}
}
