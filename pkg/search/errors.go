// pkg/search/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package search

import "errors"

// Sentinel errors returned by Search. All are terminal: a per-slot
// rejection inside the candidate loop is recovered locally and never
// surfaces one of these.
var (
	// ErrInvalidArgument is returned when earliest or latest is the
	// zero time.
	ErrInvalidArgument = errors.New("search: missing departure or arrival time")

	// ErrWindowTooSmall is returned when the requested window cannot
	// fit even one full flight block.
	ErrWindowTooSmall = errors.New("search: window too small for one flight block")

	// ErrNoFeasibleSlot is returned when the window is large enough
	// but every candidate slot failed its endpoint or vehicle checks.
	ErrNoFeasibleSlot = errors.New("search: no feasible departure slot in window")
)
