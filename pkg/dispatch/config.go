// pkg/dispatch/config.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package dispatch

import (
	"time"

	"github.com/Arrow-air/flight-router/pkg/search"
)

// Config holds the overridable numeric constants of the external
// interface contract (spec.md §6): range, slot spacing and result cap.
// The block-time constants (TLoad, TUnload, AvgSpeedKMH) are fixed in
// pkg/feasibility and are not part of Config. The zero value is not
// meaningful; use DefaultConfig and override individual fields as needed.
type Config struct {
	// CargoRangeMaxKM is the maximum single-hop distance a cargo
	// airframe can fly, used as the graph builder's range constraint.
	CargoRangeMaxKM float32

	// FlightPlanGap is the spacing between candidate departure slots.
	FlightPlanGap time.Duration

	// MaxResults caps the number of draft plans a single search call
	// may emit.
	MaxResults int
}

// DefaultConfig returns the bit-exact contract values: 75km cargo
// range, a 5 minute slot spacing, and at most 10 results.
func DefaultConfig() Config {
	return Config{
		CargoRangeMaxKM: 75.0,
		FlightPlanGap:   5 * time.Minute,
		MaxResults:      10,
	}
}

func (c Config) searchConfig() search.Config {
	return search.Config{
		FlightPlanGap: c.FlightPlanGap,
		MaxResults:    c.MaxResults,
	}
}
