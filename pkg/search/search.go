// pkg/search/search.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package search implements the flight-plan search orchestrator: given
// a route's cost, a time window, and the endpoints' calendars plus a
// fleet's vehicles and existing plans, it enumerates candidate
// departure slots and emits a draft plan for every slot that clears
// every feasibility check, bound to the first vehicle that clears it.
package search

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Arrow-air/flight-router/pkg/calendar"
	"github.com/Arrow-air/flight-router/pkg/feasibility"
	"github.com/Arrow-air/flight-router/pkg/log"
)

// SlotState names the steps a candidate departure slot passes through.
// Any failed check advances the slot directly to Skipped without
// producing an error; only Emitted slots contribute to the result.
type SlotState int

const (
	Open SlotState = iota
	DepartOk
	ArriveOk
	VehicleBound
	Emitted
	Skipped
)

// Config holds the tunable constants of the search algorithm. Use
// DefaultConfig for the numeric contract values in spec and override
// individual fields for tests that need a different slot spacing or
// result cap. Block times are not part of Config; they are the fixed
// constants of pkg/feasibility.
type Config struct {
	FlightPlanGap time.Duration
	MaxResults    int
}

// DefaultConfig returns the contract constants: a 5 minute slot
// spacing and at most 10 emitted plans per search.
func DefaultConfig() Config {
	return Config{
		FlightPlanGap: 5 * time.Minute,
		MaxResults:    10,
	}
}

// Request bundles everything Search needs about one depart/arrive
// pair beyond the route cost: their calendars, the window to search,
// and the fleet data to check slots against.
type Request struct {
	DepartSiteID   string
	ArriveSiteID   string
	DepartCalendar calendar.Calendar
	ArriveCalendar calendar.Calendar
	Earliest       time.Time
	Latest         time.Time
	Vehicles       []feasibility.Vehicle
	ExistingPlans  []feasibility.FlightPlan
}

// Search runs the ten-step candidate enumeration of §4.7 against a
// route of the given cost (kilometres, from the router's
// find-shortest-path result) and returns the draft plans it was able
// to emit, in increasing departure-time order.
func Search(req Request, routeCostKM float32, cfg Config, lg *log.Logger) ([]DraftPlan, error) {
	if req.Earliest.IsZero() || req.Latest.IsZero() {
		return nil, ErrInvalidArgument
	}

	lg.Debug("[1/5] computing total flight block", "cost_km", routeCostKM)
	tTotal := feasibility.TFlight(routeCostKM)

	window := req.Latest.Sub(req.Earliest)
	if window < tTotal {
		return nil, ErrWindowTooSmall
	}

	n := 1 + int(math.Floor(float64(window-tTotal)/float64(cfg.FlightPlanGap)))
	if n > cfg.MaxResults {
		n = cfg.MaxResults
	}
	lg.Debug("[2/5] candidate slot count", "n", n)

	plans := make([]DraftPlan, 0, n)
	for i := 0; i < n; i++ {
		state := Open
		tDepart := req.Earliest.Add(time.Duration(i) * cfg.FlightPlanGap)
		tArrive := tDepart.Add(tTotal)

		if !feasibility.SiteAvailable(req.DepartCalendar, req.DepartSiteID, tDepart, feasibility.Departure, req.ExistingPlans) {
			state = Skipped
			continue
		}
		state = DepartOk

		if !feasibility.SiteAvailable(req.ArriveCalendar, req.ArriveSiteID, tArrive.Add(-feasibility.TUnload), feasibility.Arrival, req.ExistingPlans) {
			state = Skipped
			continue
		}
		state = ArriveOk

		vehicleID, ok := firstAvailableVehicle(req.Vehicles, req.DepartSiteID, tDepart, tTotal, req.ExistingPlans)
		if !ok {
			state = Skipped
			continue
		}
		state = VehicleBound

		plans = append(plans, DraftPlan{
			PlanID:             uuid.New(),
			VehicleID:          vehicleID,
			DepartSiteID:       req.DepartSiteID,
			ArriveSiteID:       req.ArriveSiteID,
			ScheduledDeparture: tDepart,
			ScheduledArrival:   tArrive,
			FlightDistanceKM:   routeCostKM,
		})
		state = Emitted
		lg.Debug("[3/5] emitted candidate", "slot", i, "state", state, "vehicle_id", vehicleID)
	}

	lg.Debug("[4/5] finished candidate loop", "emitted", len(plans))
	if len(plans) == 0 {
		return nil, ErrNoFeasibleSlot
	}

	lg.Debug("[5/5] returning draft plans")
	return plans, nil
}

// firstAvailableVehicle scans vehicles in the given order and returns
// the id of the first one parked at departSiteID at tDepart (not en
// route) and free for [tDepart, tDepart+duration).
func firstAvailableVehicle(vehicles []feasibility.Vehicle, departSiteID string, tDepart time.Time, duration time.Duration, plans []feasibility.FlightPlan) (string, bool) {
	for _, v := range vehicles {
		siteID, minutesToArrival := feasibility.ForecastPosition(v, tDepart, plans)
		if siteID != departSiteID || minutesToArrival > 0 {
			continue
		}
		if feasibility.VehicleAvailable(v, tDepart, duration, plans) {
			return v.ID, true
		}
	}
	return "", false
}
