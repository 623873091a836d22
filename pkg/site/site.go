// pkg/site/site.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package site models the vertices of the routing graph: plain Sites and
// the Vertipad/Vertiport variants built on top of them.
//
// There is no trait-object equivalent in Go, so "site-like" types use
// a tagged-variant-plus-projection shape: Vertipad and Vertiport each
// embed a Site and AsSite extracts it. Downstream code (graph, router,
// feasibility, search) only ever sees the projected Site view.
package site

import "github.com/Arrow-air/flight-router/pkg/geodesy"

// Location is re-exported from pkg/geodesy so callers constructing
// sites don't need a second import for the type that appears in every
// Site literal.
type Location = geodesy.Location

// Status is the operating status of a Site.
type Status int

const (
	StatusOk Status = iota
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Site is a routable vertex: a stable, human-readable id (e.g.
// "usa:ny:12345", chosen to support prefix queries against a catalogue),
// a Location, an operating Status, and an optional ForwardTo successor
// id used to redirect traffic when the site is closed.
//
// Equality and hashing of a Site are by ID, not by value or pointer,
// since the same logical site may be reachable through more than one
// owner (a Vertipad's OwnerPort and a Vertiport's own Vertipads list,
// for instance).
type Site struct {
	ID        string
	Location  Location
	Status    Status
	ForwardTo string // site id; "" if the site does not redirect.
}

// ForwardsTo reports whether the site redirects to another, and the
// target id if so. ForwardTo is a redirection hint for callers, not an
// edge: the graph builder does not follow it.
func (s Site) ForwardsTo() (string, bool) {
	return s.ForwardTo, s.ForwardTo != ""
}

// AsSite is implemented by every site variant (Site itself, Vertipad,
// Vertiport) and projects it down to the underlying Site view that
// routing and feasibility code operates on.
type AsSite interface {
	AsSite() Site
}

// AsSite implements AsSite for Site itself, so a bare Site can be used
// anywhere an AsSite is expected.
func (s Site) AsSite() Site { return s }

// Vertipad is a single pad capable of one aircraft's takeoff/landing.
type Vertipad struct {
	Site
	PadAreaSquareMeters float32
	Permissions         []string
	// OwnerPortID is the id of the owning Vertiport, or "" if this
	// vertipad has no vertiport (it is its own site). Stored as an id
	// reference rather than a pointer to avoid the Vertipad<->Vertiport
	// cyclic reference the original Rust types had no way to express
	// without an arena; vertipads and vertiports are kept in separate
	// catalogue collections keyed by id.
	OwnerPortID string
	ChargeRate  float32
}

func (v Vertipad) AsSite() Site { return v.Site }

// Vertiport is a takeoff/landing facility that owns one or more
// Vertipads. VertipadIDs references the owned pads by id, mirroring
// OwnerPortID's arena-style resolution on the Vertipad side.
type Vertiport struct {
	Site
	VertipadIDs []string
}

func (p Vertiport) AsSite() Site { return p.Site }
