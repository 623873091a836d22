// pkg/feasibility/feasibility.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package feasibility reconciles recurring-schedule availability,
// existing flight-plan records, and fleet position forecasts into the
// three checks the search orchestrator needs per candidate slot:
// endpoint availability, vehicle availability, and position forecast.
package feasibility

import (
	"time"

	"github.com/Arrow-air/flight-router/pkg/calendar"
)

// Tuning constants for the cargo airframe block-time model. Generous
// by design: the system prefers over-blocking a resource to risking a
// double-booking.
const (
	TLoad       = 10 * time.Minute
	TUnload     = 10 * time.Minute
	AvgSpeedKMH = 60.0
)

// TFlight returns the total time a cargo airframe blocks its endpoints
// for a flight of the given distance: load time, plus cruise time at
// AvgSpeedKMH, plus unload time.
func TFlight(distanceKM float32) time.Duration {
	cruise := time.Duration(float64(distanceKM) / AvgSpeedKMH * float64(time.Hour))
	return TLoad + cruise + TUnload
}

// Role identifies which end of a flight plan a site-availability check
// is being made for.
type Role int

const (
	Departure Role = iota
	Arrival
)

// FlightPlan is the subset of an existing flight-plan record the
// feasibility checks read: the vehicle and sites involved, and the
// scheduled times. All other fields of a real flight-plan record are
// opaque payload to this package.
type FlightPlan struct {
	VehicleID          string
	DepartSiteID       string
	ArriveSiteID       string
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
}

// Vehicle is the subset of a vehicle record feasibility checks need:
// its recurring schedule and its last known parked site.
type Vehicle struct {
	ID         string
	Schedule   calendar.Calendar
	LastSiteID string
}

// SiteAvailable reports whether a site is free to serve the given role
// (Departure or Arrival) at tStart.
//
// A site is available when its own recurring calendar covers the
// block window, and no existing plan touching this site at this role
// has its corresponding scheduled time inside a guard band of one
// block on either side of that window.
func SiteAvailable(schedule calendar.Calendar, siteID string, tStart time.Time, role Role, plans []FlightPlan) bool {
	block := TLoad
	if role == Arrival {
		block = TUnload
	}
	tEnd := tStart.Add(block)

	if !schedule.IsAvailableBetween(tStart, tEnd) {
		return false
	}

	guardStart := tStart.Add(-block)
	guardEnd := tEnd.Add(block)
	for _, p := range plans {
		var scheduled time.Time
		switch role {
		case Departure:
			if p.DepartSiteID != siteID {
				continue
			}
			scheduled = p.ScheduledDeparture
		case Arrival:
			if p.ArriveSiteID != siteID {
				continue
			}
			scheduled = p.ScheduledArrival
		}
		if scheduled.After(guardStart) && scheduled.Before(guardEnd) {
			return false
		}
	}
	return true
}

// VehicleAvailable reports whether vehicle v is free for the block
// [tStart, tStart+duration): its own schedule must cover the window,
// and no existing plan assigned to v may overlap it. Intervals that
// only touch at an endpoint do not count as overlapping.
func VehicleAvailable(v Vehicle, tStart time.Time, duration time.Duration, plans []FlightPlan) bool {
	tEnd := tStart.Add(duration)
	if !v.Schedule.IsAvailableBetween(tStart, tEnd) {
		return false
	}
	for _, p := range plans {
		if p.VehicleID != v.ID {
			continue
		}
		if p.ScheduledDeparture.Before(tEnd) && tStart.Before(p.ScheduledArrival) {
			return false
		}
	}
	return true
}

// ForecastPosition estimates where vehicle v will be at time t, given
// its last known parked site and the plans assigned to it.
//
// It considers plans for v with a scheduled departure at or before t
// and takes the most recent such plan. If none exists, the vehicle is
// assumed still parked at LastSiteID. Otherwise the vehicle is
// forecast to be at (or inbound to) that plan's arrival site;
// minutesToArrival is 0 if the plan has already landed by t, meaning
// the vehicle is parked there, and positive if it is still en route.
func ForecastPosition(v Vehicle, t time.Time, plans []FlightPlan) (siteID string, minutesToArrival float64) {
	var newest *FlightPlan
	for i := range plans {
		p := &plans[i]
		if p.VehicleID != v.ID {
			continue
		}
		if p.ScheduledDeparture.After(t) {
			continue
		}
		if newest == nil || p.ScheduledDeparture.After(newest.ScheduledDeparture) {
			newest = p
		}
	}

	if newest == nil {
		return v.LastSiteID, 0
	}

	remaining := newest.ScheduledArrival.Sub(t).Minutes()
	if remaining < 0 {
		remaining = 0
	}
	return newest.ArriveSiteID, remaining
}
