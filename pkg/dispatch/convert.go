// pkg/dispatch/convert.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package dispatch

import (
	"fmt"
	"time"

	"github.com/Arrow-air/flight-router/pkg/calendar"
	"github.com/Arrow-air/flight-router/pkg/feasibility"
	"github.com/Arrow-air/flight-router/pkg/geodesy"
	"github.com/Arrow-air/flight-router/pkg/site"
)

// ExternalSite is the minimal shape a catalogue collaborator provides
// per site: an id and, if the site is active, its coordinates and
// recurring availability text. A nil Data marks a closed or
// not-yet-provisioned site.
type ExternalSite struct {
	ID   string
	Data *ExternalSiteData
}

type ExternalSiteData struct {
	Latitude  float64
	Longitude float64
	Schedule  string
}

// ExternalVehicle is the minimal shape a fleet collaborator provides
// per vehicle.
type ExternalVehicle struct {
	ID   string
	Data *ExternalVehicleData
}

type ExternalVehicleData struct {
	Schedule   string
	LastSiteID string
}

// ExternalPlan is the minimal shape a flight-plan log collaborator
// provides per existing plan.
type ExternalPlan struct {
	Data *ExternalPlanData
}

type ExternalPlanData struct {
	VehicleID          string
	DepartSiteID       string
	ArriveSiteID       string
	ScheduledDeparture ExternalTimestamp
	ScheduledArrival   ExternalTimestamp
}

// ExternalTimestamp is a seconds/nanos pair, the wire shape timestamps
// cross the boundary in.
type ExternalTimestamp struct {
	Seconds int64
	Nanos   int32
}

// Time converts an ExternalTimestamp to a UTC time.Time.
func (ts ExternalTimestamp) Time() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

// toSite converts an ExternalSite into a Vertiport: status Ok,
// altitude 0, per spec.md §6.
func toSite(ext ExternalSite) (site.Vertiport, calendar.Calendar, error) {
	if ext.Data == nil {
		return site.Vertiport{}, calendar.Calendar{}, fmt.Errorf("%w: site %q has no data", ErrInvalidArgument, ext.ID)
	}

	loc, err := geodesy.NewLocation(float32(ext.Data.Latitude), float32(ext.Data.Longitude), 0)
	if err != nil {
		return site.Vertiport{}, calendar.Calendar{}, fmt.Errorf("%w: site %q: %v", ErrInvalidArgument, ext.ID, err)
	}

	cal, err := calendar.Parse(ext.Data.Schedule)
	if err != nil {
		return site.Vertiport{}, calendar.Calendar{}, fmt.Errorf("%w: site %q schedule: %v", ErrInvalidArgument, ext.ID, err)
	}

	return site.Vertiport{
		Site: site.Site{
			ID:       ext.ID,
			Location: loc,
			Status:   site.StatusOk,
		},
	}, cal, nil
}

// toVehicle converts an ExternalVehicle into a feasibility.Vehicle.
func toVehicle(ext ExternalVehicle) (feasibility.Vehicle, error) {
	if ext.Data == nil {
		return feasibility.Vehicle{}, fmt.Errorf("%w: vehicle %q has no data", ErrInvalidArgument, ext.ID)
	}
	cal, err := calendar.Parse(ext.Data.Schedule)
	if err != nil {
		return feasibility.Vehicle{}, fmt.Errorf("%w: vehicle %q schedule: %v", ErrInvalidArgument, ext.ID, err)
	}
	return feasibility.Vehicle{
		ID:         ext.ID,
		Schedule:   cal,
		LastSiteID: ext.Data.LastSiteID,
	}, nil
}

// toPlan converts an ExternalPlan into a feasibility.FlightPlan.
func toPlan(ext ExternalPlan) (feasibility.FlightPlan, error) {
	if ext.Data == nil {
		return feasibility.FlightPlan{}, fmt.Errorf("%w: plan has no data", ErrInvalidArgument)
	}
	return feasibility.FlightPlan{
		VehicleID:          ext.Data.VehicleID,
		DepartSiteID:       ext.Data.DepartSiteID,
		ArriveSiteID:       ext.Data.ArriveSiteID,
		ScheduledDeparture: ext.Data.ScheduledDeparture.Time(),
		ScheduledArrival:   ext.Data.ScheduledArrival.Time(),
	}, nil
}
