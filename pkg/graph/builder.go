// pkg/graph/builder.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package graph builds the range-constrained directed graph that
// pkg/router searches: every ordered pair of sites within a distance
// constraint becomes an edge.
package graph

import "github.com/Arrow-air/flight-router/pkg/site"

// Edge is a directed connection between two sites and the cost of
// traversing it (in the same units the cost function returns, normally
// kilometres).
type Edge struct {
	From site.Site
	To   site.Site
	Cost float32
}

// ConstraintFunc measures a candidate edge against Constraint; an edge
// is only built when ConstraintFunc(from, to) <= constraint. CostFunc
// computes the weight assigned to an edge that passes the constraint.
// They are often the same function (e.g. great-circle distance used
// both as range constraint and as edge weight) but need not be.
type ConstraintFunc func(from, to site.Site) float32
type CostFunc func(from, to site.Site) float32

// BuildEdges connects every ordered pair of distinct sites in sites
// whose ConstraintFunc value is within constraint, weighting each
// resulting edge with CostFunc.
//
// No self-loops are created (a site is never connected to itself) and
// no deduplication is performed: if two entries in sites carry the
// same id, both are visited and both may produce edges.
//
// Time complexity is O(n^2) in the number of sites, since every
// ordered pair is evaluated once.
func BuildEdges(sites []site.Site, constraint float32, constraintFn ConstraintFunc, costFn CostFunc) []Edge {
	edges := make([]Edge, 0)
	for _, from := range sites {
		for _, to := range sites {
			if from.ID == to.ID {
				continue
			}
			if constraintFn(from, to) <= constraint {
				edges = append(edges, Edge{From: from, To: to, Cost: costFn(from, to)})
			}
		}
	}
	return edges
}
