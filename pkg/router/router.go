// pkg/router/router.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package router indexes a graph.Edge set into an adjacency list keyed
// by vertex index and finds shortest paths over it with a container/heap
// priority queue, in the style of a single-source Dijkstra/A* driver.
package router

import (
	"container/heap"

	"github.com/Arrow-air/flight-router/pkg/graph"
	"github.com/Arrow-air/flight-router/pkg/site"
)

// Algorithm names the search a caller asks FindShortestPath for.
// Dijkstra and AStar share one A* driver and FindShortestPath does not
// read the value: the search is shaped only by the Heuristic passed
// alongside it. By convention a Dijkstra caller passes nil (the zero
// heuristic) and an AStar caller passes an admissible estimate.
type Algorithm int

const (
	Dijkstra Algorithm = iota
	AStar
)

type adjacency struct {
	to   int
	cost float32
}

// Router holds a directed, weighted graph built from a set of sites
// and supports shortest-path queries between them by site id.
type Router struct {
	sites []site.Site
	index map[string]int // site id -> vertex index
	adj   [][]adjacency  // adjacency[v] = outgoing edges from vertex v
	edges []graph.Edge
}

// New indexes sites and edges into a Router. Vertices are numbered in
// order of first appearance among the edge endpoints; after that, any
// site in sites that no edge mentions is added as a vertex with no
// edges, so every input site is a graph node even when the constraint
// rejected all of its candidate edges.
func New(sites []site.Site, edges []graph.Edge) *Router {
	r := &Router{
		index: make(map[string]int, len(sites)),
		edges: edges,
	}

	vertexIndex := func(s site.Site) int {
		if i, ok := r.index[s.ID]; ok {
			return i
		}
		i := len(r.sites)
		r.sites = append(r.sites, s)
		r.index[s.ID] = i
		r.adj = append(r.adj, nil)
		return i
	}

	for _, e := range edges {
		fromIdx := vertexIndex(e.From)
		toIdx := vertexIndex(e.To)
		r.adj[fromIdx] = append(r.adj[fromIdx], adjacency{to: toIdx, cost: e.Cost})
	}

	for _, s := range sites {
		vertexIndex(s)
	}

	return r
}

// VertexIndex returns the internal vertex index for a site id, and
// whether that id is present in the router.
func (r *Router) VertexIndex(id string) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// SiteOf returns the site registered at a vertex index.
func (r *Router) SiteOf(idx int) site.Site {
	return r.sites[idx]
}

// VertexCount returns the number of vertices (distinct site ids) in
// the router.
func (r *Router) VertexCount() int {
	return len(r.sites)
}

// EdgeCount returns the number of directed edges in the router.
func (r *Router) EdgeCount() int {
	return len(r.edges)
}

// Edges returns the edge list the router was built from.
func (r *Router) Edges() []graph.Edge {
	return r.edges
}

// Heuristic estimates the remaining cost from a vertex to the search
// target; FindShortestPath calls it each time it queues a vertex. A nil
// Heuristic behaves as the zero function, degrading AStar to plain
// Dijkstra.
type Heuristic func(vertexIdx int) float32

// FindShortestPath returns the minimum-cost path from the site "from"
// to the site "to" and its total cost.
//
// Three sentinel results signal the edge cases the search can hit
// instead of a normal path:
//   - (-1.0, nil) if either from or to is not a known site id.
//   - (0.0, nil) if both ids are known but no path connects them.
//   - (0.0, []string{from}) if from == to (a trivial, zero-cost path).
//
// Any other result is (cost, path) for an actual path with at least
// two sites, in visit order from "from" to "to" inclusive.
func (r *Router) FindShortestPath(from, to string, algorithm Algorithm, heuristic Heuristic) (float32, []string) {
	fromIdx, fromOk := r.index[from]
	toIdx, toOk := r.index[to]
	if !fromOk || !toOk {
		return -1.0, nil
	}
	if from == to {
		return 0.0, []string{from}
	}
	if heuristic == nil {
		heuristic = func(int) float32 { return 0 }
	}

	const unset = -1
	dist := make([]float32, len(r.sites))
	prev := make([]int, len(r.sites))
	visited := make([]bool, len(r.sites))
	for i := range dist {
		dist[i] = -1 // -1 marks "not yet reached"
		prev[i] = unset
	}
	dist[fromIdx] = 0

	pq := make(vertexPQ, 0, len(r.sites))
	heap.Init(&pq)
	heap.Push(&pq, &vertexItem{vertex: fromIdx, priority: heuristic(fromIdx)})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*vertexItem)
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == toIdx {
			break
		}

		for _, e := range r.adj[u] {
			v := e.to
			if visited[v] {
				continue
			}
			newDist := dist[u] + e.cost
			if dist[v] == -1 || newDist < dist[v] {
				dist[v] = newDist
				prev[v] = u
				heap.Push(&pq, &vertexItem{vertex: v, priority: newDist + heuristic(v)})
			}
		}
	}

	if dist[toIdx] == -1 {
		return 0.0, nil
	}

	path := []int{toIdx}
	for cur := toIdx; prev[cur] != unset; {
		cur = prev[cur]
		path = append(path, cur)
	}
	ids := make([]string, len(path))
	for i, v := range path {
		ids[len(path)-1-i] = r.sites[v].ID
	}
	return dist[toIdx], ids
}

// vertexItem is an entry in the router's priority queue: a vertex and
// its tentative priority (distance, or distance plus heuristic for
// A*).
type vertexItem struct {
	vertex   int
	priority float32
}

// vertexPQ is a min-heap of *vertexItem ordered by priority ascending,
// using the lazy decrease-key pattern: a vertex may be pushed more
// than once, with stale entries skipped on pop via the visited flag.
type vertexPQ []*vertexItem

func (pq vertexPQ) Len() int            { return len(pq) }
func (pq vertexPQ) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq vertexPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*vertexItem)) }
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
