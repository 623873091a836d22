// pkg/dispatch/service.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package dispatch is the host-facing facade: it owns the active site
// catalogue and router, resolves external collaborator records into
// the core's internal types, and orchestrates route queries and
// flight-plan search against them.
package dispatch

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/iancoleman/orderedmap"

	"github.com/Arrow-air/flight-router/pkg/calendar"
	"github.com/Arrow-air/flight-router/pkg/feasibility"
	"github.com/Arrow-air/flight-router/pkg/geodesy"
	"github.com/Arrow-air/flight-router/pkg/graph"
	"github.com/Arrow-air/flight-router/pkg/log"
	"github.com/Arrow-air/flight-router/pkg/router"
	"github.com/Arrow-air/flight-router/pkg/search"
	"github.com/Arrow-air/flight-router/pkg/site"
	"github.com/Arrow-air/flight-router/pkg/util"
)

// Service holds the active site catalogue and the router built from
// it. It is a one-shot compare-and-set: InitFromSites may succeed
// exactly once per Service value. After that, a Service is immutable
// and every read method is safe to call concurrently without further
// synchronization.
//
// A host normally constructs one Service at boot via NewService and
// either holds onto it directly or reaches it through Default for
// code that wants a classic single-process global.
type Service struct {
	cfg Config
	lg  *log.Logger

	initialized atomic.Bool
	router      *router.Router
	calendars   map[string]calendar.Calendar
}

// NewService creates an uninitialized Service. Call InitFromSites
// before using any other method.
func NewService(cfg Config, lg *log.Logger) *Service {
	if lg == nil {
		lg = log.Discard()
	}
	return &Service{cfg: cfg, lg: lg}
}

// InitFromSites builds the graph and router from a site catalogue
// snapshot. It may be called exactly once; a second call returns
// ErrAlreadyInitialized and leaves the Service unchanged.
//
// A malformed ExternalSite is fatal only for that site (spec.md §7):
// its conversion error is accumulated via util.ErrorLogger and logged,
// and the site is dropped from the catalogue rather than aborting the
// whole call. InitFromSites itself only fails, with the one-shot flag
// reset so the caller can retry, when no site in the batch converted
// successfully.
func (s *Service) InitFromSites(sites []ExternalSite) error {
	if !s.initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	stop := util.LogSlowOperation(s.lg, "dispatch.InitFromSites", 500*time.Millisecond)
	defer stop()

	s.lg.Info("[1/4] converting external sites", "count", len(sites))
	var errLog util.ErrorLogger
	plainSites := make([]site.Site, 0, len(sites))
	calendars := make(map[string]calendar.Calendar, len(sites))
	for _, ext := range sites {
		errLog.Push(ext.ID)
		vp, cal, err := toSite(ext)
		if err != nil {
			errLog.Error(err)
			errLog.Pop()
			continue
		}
		errLog.Pop()
		plainSites = append(plainSites, vp.AsSite())
		calendars[ext.ID] = cal
	}
	if errLog.HaveErrors() {
		errLog.PrintErrors(s.lg)
	}
	if len(plainSites) == 0 {
		s.initialized.Store(false)
		return fmt.Errorf("%w: no site in the catalogue converted successfully", ErrInvalidArgument)
	}

	s.lg.Info("[2/4] building edges", "range_km", s.cfg.CargoRangeMaxKM)
	edges := graph.BuildEdges(plainSites, s.cfg.CargoRangeMaxKM, distance, distance)

	s.lg.Info("[3/4] building router", "vertex_count", len(plainSites), "edge_count", len(edges))
	r := router.New(plainSites, edges)

	s.lg.Info("[4/4] dispatch service ready", "vertex_count", r.VertexCount(), "edge_count", r.EdgeCount())
	s.router = r
	s.calendars = calendars
	return nil
}

func distance(a, b site.Site) float32 {
	return geodesy.Distance(a.Location, b.Location)
}

// ready reports whether InitFromSites has completed successfully.
func (s *Service) ready() bool {
	return s.initialized.Load() && s.router != nil
}

// RouteQuery names the two site ids a route or search request spans.
type RouteQuery struct {
	FromSiteID string
	ToSiteID   string
}

// GetRoute returns the shortest-path cost (kilometres) and the site id
// path between the two sites in q, using Dijkstra.
func (s *Service) GetRoute(q RouteQuery) (float32, []string, error) {
	if !s.ready() {
		return 0, nil, ErrNotReady
	}
	if _, ok := s.router.VertexIndex(q.FromSiteID); !ok {
		return 0, nil, fmt.Errorf("%w: %s", ErrNotFound, q.FromSiteID)
	}
	if _, ok := s.router.VertexIndex(q.ToSiteID); !ok {
		return 0, nil, fmt.Errorf("%w: %s", ErrNotFound, q.ToSiteID)
	}

	cost, path := s.router.FindShortestPath(q.FromSiteID, q.ToSiteID, router.Dijkstra, nil)
	return cost, path, nil
}

// FlightPlanQuery is the request shape for GetPossibleFlights.
type FlightPlanQuery struct {
	DepartSiteID  string
	ArriveSiteID  string
	Earliest      time.Time
	Latest        time.Time
	Vehicles      []ExternalVehicle
	ExistingPlans []ExternalPlan
}

// GetPossibleFlights runs the full ten-step search (spec.md §4.7): it
// resolves the route between the two requested sites, then enumerates
// and returns the feasible draft plans within the window.
func (s *Service) GetPossibleFlights(q FlightPlanQuery) ([]search.DraftPlan, error) {
	if !s.ready() {
		return nil, ErrNotReady
	}
	if q.Earliest.IsZero() || q.Latest.IsZero() {
		return nil, fmt.Errorf("%w: missing departure or arrival time", ErrInvalidArgument)
	}

	s.lg.Info("[1/5] finding route between sites", "depart", q.DepartSiteID, "arrive", q.ArriveSiteID)
	cost, path, err := s.GetRoute(RouteQuery{FromSiteID: q.DepartSiteID, ToSiteID: q.ArriveSiteID})
	if err != nil {
		return nil, err
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: %s -> %s", ErrUnroutable, q.DepartSiteID, q.ArriveSiteID)
	}

	departCal, ok := s.calendars[q.DepartSiteID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, q.DepartSiteID)
	}
	arriveCal, ok := s.calendars[q.ArriveSiteID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, q.ArriveSiteID)
	}

	s.lg.Info("[2/5] converting vehicles and plans", "vehicles", len(q.Vehicles), "plans", len(q.ExistingPlans))
	vehicles := make([]feasibility.Vehicle, 0, len(q.Vehicles))
	for _, ev := range q.Vehicles {
		v, err := toVehicle(ev)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	plans := make([]feasibility.FlightPlan, 0, len(q.ExistingPlans))
	for _, ep := range q.ExistingPlans {
		p, err := toPlan(ep)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	s.lg.Info("[3/5] searching candidate slots", "cost_km", cost)
	draftPlans, err := search.Search(search.Request{
		DepartSiteID:   q.DepartSiteID,
		ArriveSiteID:   q.ArriveSiteID,
		DepartCalendar: departCal,
		ArriveCalendar: arriveCal,
		Earliest:       q.Earliest,
		Latest:         q.Latest,
		Vehicles:       vehicles,
		ExistingPlans:  plans,
	}, cost, s.cfg.searchConfig(), s.lg)
	if err != nil {
		return nil, mapSearchErr(err)
	}

	s.lg.Info("[4/5] emitted draft plans", "count", len(draftPlans))
	s.lg.Info("[5/5] returning draft flight plan(s)")
	return draftPlans, nil
}

func mapSearchErr(err error) error {
	switch {
	case errors.Is(err, search.ErrInvalidArgument):
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	case errors.Is(err, search.ErrWindowTooSmall):
		return fmt.Errorf("%w: %v", ErrWindowTooSmall, err)
	case errors.Is(err, search.ErrNoFeasibleSlot):
		return fmt.Errorf("%w: %v", ErrNoFeasibleSlot, err)
	default:
		return err
	}
}

// NearbyQuery names a center location and search radius for
// NearbySites.
type NearbyQuery struct {
	Location geodesy.Location
	RadiusKM float32
}

// NearbySites returns every known site within RadiusKM of q.Location,
// as an *orderedmap.OrderedMap keyed by site id in canonical
// (insertion) order, so a JSON-serialized response preserves the
// deterministic ordering the core's read operations guarantee.
func (s *Service) NearbySites(q NearbyQuery) (*orderedmap.OrderedMap, error) {
	if !s.ready() {
		return nil, ErrNotReady
	}

	result := orderedmap.New()
	for i := 0; i < s.router.VertexCount(); i++ {
		candidate := s.router.SiteOf(i)
		if geodesy.Distance(q.Location, candidate.Location) <= q.RadiusKM {
			result.Set(candidate.ID, candidate)
		}
	}
	return result, nil
}

// NearestVertiports returns the known site closest to srcLoc and the
// known site closest to dstLoc, each found by an independent linear
// scan. The two results may be the same site if the catalogue is
// small or the two locations are close together; callers must handle
// that case themselves.
func (s *Service) NearestVertiports(srcLoc, dstLoc geodesy.Location) (site.Site, site.Site, error) {
	if !s.ready() {
		return site.Site{}, site.Site{}, ErrNotReady
	}
	if s.router.VertexCount() == 0 {
		return site.Site{}, site.Site{}, fmt.Errorf("%w: no sites in catalogue", ErrNotFound)
	}

	nearest := func(loc geodesy.Location) site.Site {
		best := s.router.SiteOf(0)
		bestDist := geodesy.Distance(loc, best.Location)
		for i := 1; i < s.router.VertexCount(); i++ {
			candidate := s.router.SiteOf(i)
			if d := geodesy.Distance(loc, candidate.Location); d < bestDist {
				best, bestDist = candidate, d
			}
		}
		return best
	}

	return nearest(srcLoc), nearest(dstLoc), nil
}
