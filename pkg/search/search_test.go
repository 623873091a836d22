// pkg/search/search_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package search

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/Arrow-air/flight-router/pkg/calendar"
	"github.com/Arrow-air/flight-router/pkg/feasibility"
)

const alwaysOpenSchedule = "DTSTART:20200101T000000Z;DURATION:P1D\nRRULE:FREQ=DAILY"

func alwaysOpen(t *testing.T) calendar.Calendar {
	t.Helper()
	cal, err := calendar.Parse(alwaysOpenSchedule)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return cal
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad fixture time %q: %v", s, err)
	}
	return ts
}

// TestSearchEmitsOrderedPlans mirrors the end-to-end scenario from
// spec.md §8 #6: a two hour window, a 10km leg (30 minute block), two
// always-open calendars, one vehicle parked at the departure site, and
// no existing plans. 1 + floor((120-30)/5) = 19 theoretical slots,
// capped to MAX_RESULTS = 10.
func TestSearchEmitsOrderedPlans(t *testing.T) {
	earliest := mustTime(t, "2022-10-20T18:00:00Z")
	req := Request{
		DepartSiteID:   "depart",
		ArriveSiteID:   "arrive",
		DepartCalendar: alwaysOpen(t),
		ArriveCalendar: alwaysOpen(t),
		Earliest:       earliest,
		Latest:         earliest.Add(2 * time.Hour),
		Vehicles:       []feasibility.Vehicle{{ID: "veh-1", Schedule: alwaysOpen(t), LastSiteID: "depart"}},
	}

	plans, err := Search(req, 10, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plans) != 10 {
		t.Fatalf("got %d plans, expected 10 (capped by MaxResults):\n%s", len(plans), spew.Sdump(plans))
	}
	for i, p := range plans {
		want := earliest.Add(time.Duration(i) * 5 * time.Minute)
		if !p.ScheduledDeparture.Equal(want) {
			t.Errorf("plan %d departure = %v, expected %v", i, p.ScheduledDeparture, want)
		}
		if p.VehicleID != "veh-1" {
			t.Errorf("plan %d vehicle = %q, expected veh-1", i, p.VehicleID)
		}
	}
}

func TestSearchMonotonicDeparturesInSteps(t *testing.T) {
	earliest := mustTime(t, "2022-10-20T18:00:00Z")
	req := Request{
		DepartSiteID:   "depart",
		ArriveSiteID:   "arrive",
		DepartCalendar: alwaysOpen(t),
		ArriveCalendar: alwaysOpen(t),
		Earliest:       earliest,
		Latest:         earliest.Add(1 * time.Hour),
		Vehicles:       []feasibility.Vehicle{{ID: "veh-1", Schedule: alwaysOpen(t), LastSiteID: "depart"}},
	}

	plans, err := Search(req, 10, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(plans); i++ {
		gap := plans[i].ScheduledDeparture.Sub(plans[i-1].ScheduledDeparture)
		if gap != 5*time.Minute {
			t.Errorf("gap between plan %d and %d = %v, expected 5m", i-1, i, gap)
		}
	}
}

func TestSearchMissingTimestamps(t *testing.T) {
	_, err := Search(Request{}, 10, DefaultConfig(), nil)
	if err != ErrInvalidArgument {
		t.Errorf("err = %v, expected ErrInvalidArgument", err)
	}
}

func TestSearchWindowTooSmall(t *testing.T) {
	earliest := mustTime(t, "2022-10-20T18:00:00Z")
	req := Request{
		DepartSiteID:   "depart",
		ArriveSiteID:   "arrive",
		DepartCalendar: alwaysOpen(t),
		ArriveCalendar: alwaysOpen(t),
		Earliest:       earliest,
		Latest:         earliest.Add(5 * time.Minute),
	}
	_, err := Search(req, 10, DefaultConfig(), nil)
	if err != ErrWindowTooSmall {
		t.Errorf("err = %v, expected ErrWindowTooSmall", err)
	}
}

func TestSearchNoFeasibleSlotWithoutVehicle(t *testing.T) {
	earliest := mustTime(t, "2022-10-20T18:00:00Z")
	req := Request{
		DepartSiteID:   "depart",
		ArriveSiteID:   "arrive",
		DepartCalendar: alwaysOpen(t),
		ArriveCalendar: alwaysOpen(t),
		Earliest:       earliest,
		Latest:         earliest.Add(1 * time.Hour),
	}
	_, err := Search(req, 10, DefaultConfig(), nil)
	if err != ErrNoFeasibleSlot {
		t.Errorf("err = %v, expected ErrNoFeasibleSlot", err)
	}
}

func TestSearchSkipsVehicleNotParkedAtDeparture(t *testing.T) {
	earliest := mustTime(t, "2022-10-20T18:00:00Z")
	req := Request{
		DepartSiteID:   "depart",
		ArriveSiteID:   "arrive",
		DepartCalendar: alwaysOpen(t),
		ArriveCalendar: alwaysOpen(t),
		Earliest:       earliest,
		Latest:         earliest.Add(1 * time.Hour),
		Vehicles:       []feasibility.Vehicle{{ID: "veh-1", Schedule: alwaysOpen(t), LastSiteID: "elsewhere"}},
	}
	_, err := Search(req, 10, DefaultConfig(), nil)
	if err != ErrNoFeasibleSlot {
		t.Errorf("err = %v, expected ErrNoFeasibleSlot", err)
	}
}
