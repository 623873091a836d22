// pkg/graph/builder_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package graph

import (
	"testing"

	"github.com/Arrow-air/flight-router/pkg/geodesy"
	"github.com/Arrow-air/flight-router/pkg/site"
)

func distFn(a, b site.Site) float32 {
	return geodesy.Distance(a.Location, b.Location)
}

func fourSites() []site.Site {
	return []site.Site{
		{ID: "1", Location: geodesy.Location{Latitude: 37.777843, Longitude: -122.468207}},
		{ID: "2", Location: geodesy.Location{Latitude: 37.778339, Longitude: -122.460395}},
		{ID: "3", Location: geodesy.Location{Latitude: 37.780596, Longitude: -122.434904}},
		{ID: "4", Location: geodesy.Location{Latitude: 40.738820, Longitude: -73.990440}},
	}
}

func TestBuildEdgesFullyConnected(t *testing.T) {
	sites := fourSites()
	edges := BuildEdges(sites, 10000, distFn, distFn)
	// n*(n-1) ordered pairs, no self loops, no dedup.
	if len(edges) != len(sites)*(len(sites)-1) {
		t.Fatalf("edge count = %d, expected %d", len(edges), len(sites)*(len(sites)-1))
	}
}

func TestBuildEdgesNoSelfLoops(t *testing.T) {
	sites := fourSites()
	edges := BuildEdges(sites, 100000, distFn, distFn)
	for _, e := range edges {
		if e.From.ID == e.To.ID {
			t.Fatalf("unexpected self-loop edge for %s", e.From.ID)
		}
	}
}

func TestBuildEdgesRespectsConstraint(t *testing.T) {
	sites := fourSites()
	// NYC is ~4000km from the three SF sites, so a 100km constraint
	// should only connect the local cluster of three.
	edges := BuildEdges(sites, 100, distFn, distFn)
	for _, e := range edges {
		if e.From.ID == "4" || e.To.ID == "4" {
			t.Fatalf("unexpected cross-country edge: %s -> %s", e.From.ID, e.To.ID)
		}
	}
	if len(edges) != 6 {
		t.Fatalf("edge count = %d, expected 6 (3 sites fully connected)", len(edges))
	}
}

func TestBuildEdgesEmpty(t *testing.T) {
	edges := BuildEdges(nil, 100, distFn, distFn)
	if len(edges) != 0 {
		t.Fatalf("expected no edges for empty input, got %d", len(edges))
	}
}

func TestBuildEdgesZeroConstraintDisconnects(t *testing.T) {
	sites := fourSites()
	edges := BuildEdges(sites, 0, distFn, distFn)
	if len(edges) != 0 {
		t.Fatalf("expected no edges with zero constraint, got %d", len(edges))
	}
}
