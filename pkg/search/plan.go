// pkg/search/plan.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package search

import (
	"time"

	"github.com/google/uuid"
)

// DraftPlan is a candidate flight plan emitted by Search: a concrete
// vehicle assignment and departure/arrival instants for one leg
// between two sites. It is "draft" because nothing here is persisted;
// the host collaborator decides whether to submit it.
type DraftPlan struct {
	PlanID             uuid.UUID
	VehicleID          string
	DepartSiteID       string
	ArriveSiteID       string
	ScheduledDeparture time.Time
	ScheduledArrival   time.Time
	FlightDistanceKM   float32
}
