// main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command flight-router is a one-shot query tool: it loads a site
// catalogue (and, optionally, vehicles and existing plans) from local
// JSON fixtures, builds a dispatch.Service, and runs a single
// GetPossibleFlights query against it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Arrow-air/flight-router/pkg/dispatch"
	"github.com/Arrow-air/flight-router/pkg/log"
)

var (
	logLevel         = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir           = flag.String("logdir", "", "log file directory")
	sitesFilename    = flag.String("sites", "", "path to a JSON file with an array of dispatch.ExternalSite")
	vehiclesFilename = flag.String("vehicles", "", "path to a JSON file with an array of dispatch.ExternalVehicle")
	plansFilename    = flag.String("plans", "", "path to a JSON file with an array of dispatch.ExternalPlan")
	depart           = flag.String("depart", "", "departure site id")
	arrive           = flag.String("arrive", "", "arrival site id")
	earliest         = flag.String("earliest", "", "earliest departure time, RFC3339")
	latest           = flag.String("latest", "", "latest arrival time, RFC3339")
	rangeKM          = flag.Float64("range-km", 75.0, "maximum single-hop range in kilometres")
)

func loadJSON[T any](path string) ([]T, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var v []T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return v, nil
}

func main() {
	flag.Parse()
	lg := log.New("flight-router", *logLevel, *logDir)

	if *sitesFilename == "" || *depart == "" || *arrive == "" || *earliest == "" || *latest == "" {
		fmt.Fprintln(os.Stderr, "usage: flight-router -sites sites.json -depart ID -arrive ID -earliest RFC3339 -latest RFC3339")
		flag.PrintDefaults()
		os.Exit(2)
	}

	sites, err := loadJSON[dispatch.ExternalSite](*sitesFilename)
	if err != nil {
		lg.Errorf("loading sites: %v", err)
		os.Exit(1)
	}
	vehicles, err := loadJSON[dispatch.ExternalVehicle](*vehiclesFilename)
	if err != nil {
		lg.Errorf("loading vehicles: %v", err)
		os.Exit(1)
	}
	plans, err := loadJSON[dispatch.ExternalPlan](*plansFilename)
	if err != nil {
		lg.Errorf("loading plans: %v", err)
		os.Exit(1)
	}

	earliestTime, err := time.Parse(time.RFC3339, *earliest)
	if err != nil {
		lg.Errorf("parsing -earliest: %v", err)
		os.Exit(1)
	}
	latestTime, err := time.Parse(time.RFC3339, *latest)
	if err != nil {
		lg.Errorf("parsing -latest: %v", err)
		os.Exit(1)
	}

	cfg := dispatch.DefaultConfig()
	cfg.CargoRangeMaxKM = float32(*rangeKM)
	svc := dispatch.NewService(cfg, lg)

	if err := svc.InitFromSites(sites); err != nil {
		lg.Errorf("initializing service: %v", err)
		os.Exit(1)
	}

	result, err := svc.GetPossibleFlights(dispatch.FlightPlanQuery{
		DepartSiteID:  *depart,
		ArriveSiteID:  *arrive,
		Earliest:      earliestTime,
		Latest:        latestTime,
		Vehicles:      vehicles,
		ExistingPlans: plans,
	})
	if err != nil {
		lg.Errorf("search failed: %v", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		lg.Errorf("encoding result: %v", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
