// pkg/calendar/calendar.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package calendar parses the DTSTART/DURATION/RRULE text format used
// to describe a site or vehicle's recurring availability, and answers
// whether a given time window falls within it.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/sosodev/duration"
	"github.com/teambition/rrule-go"
)

// block is one DTSTART/DURATION/RRULE entry: a recurrence rule paired
// with the duration of each occurrence it produces.
type block struct {
	set      *rrule.Set
	duration time.Duration
}

// Calendar is a parsed availability calendar: a union of one or more
// recurrence blocks. A time window is available if it falls entirely
// within at least one occurrence of at least one block.
type Calendar struct {
	blocks []block
}

// dtStartLayout is the iCalendar UTC date-time format used by DTSTART
// lines, e.g. "20221020T180000Z".
const dtStartLayout = "20060102T150405Z"

// Parse parses a calendar text in the form emitted by site and vehicle
// schedule records:
//
//	DTSTART:20221020T180000Z;DURATION:PT1H
//	RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR
//
// Multiple blocks may be given, separated by a blank line, and their
// occurrences are unioned by IsAvailableBetween. Each block's first
// line carries DTSTART and DURATION joined by ";"; its second line is
// the RRULE.
func Parse(text string) (Calendar, error) {
	var cal Calendar
	for _, raw := range strings.Split(text, "\n\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		b, err := parseBlock(raw)
		if err != nil {
			return Calendar{}, err
		}
		cal.blocks = append(cal.blocks, b)
	}
	if len(cal.blocks) == 0 {
		return Calendar{}, fmt.Errorf("calendar: empty schedule")
	}
	return cal, nil
}

func parseBlock(raw string) (block, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return block{}, fmt.Errorf("calendar: block %q missing RRULE line", raw)
	}

	dtStartPart, durationPart, err := splitDTStartLine(lines[0])
	if err != nil {
		return block{}, err
	}

	if _, err := time.Parse(dtStartLayout, dtStartPart); err != nil {
		return block{}, fmt.Errorf("calendar: invalid DTSTART %q: %w", dtStartPart, err)
	}

	d, err := duration.Parse(durationPart)
	if err != nil {
		return block{}, fmt.Errorf("calendar: invalid DURATION %q: %w", durationPart, err)
	}

	rruleLine := strings.Join(lines[1:], "\n")
	set, err := rrule.StrToRRuleSet(fmt.Sprintf("DTSTART:%s\n%s", dtStartPart, rruleLine))
	if err != nil {
		return block{}, fmt.Errorf("calendar: invalid RRULE %q: %w", rruleLine, err)
	}

	return block{set: set, duration: d.ToTimeDuration()}, nil
}

// splitDTStartLine splits "DTSTART:<ts>;DURATION:<iso8601>" into its
// two field values.
func splitDTStartLine(line string) (dtStart, dur string, err error) {
	const dtPrefix = "DTSTART:"
	const durMarker = ";DURATION:"

	if !strings.HasPrefix(line, dtPrefix) {
		return "", "", fmt.Errorf("calendar: line %q missing DTSTART prefix", line)
	}
	idx := strings.Index(line, durMarker)
	if idx < 0 {
		return "", "", fmt.Errorf("calendar: line %q missing DURATION field", line)
	}
	dtStart = line[len(dtPrefix):idx]
	dur = line[idx+len(durMarker):]
	return dtStart, dur, nil
}

// IsAvailableBetween reports whether the half-open window [start, end)
// falls entirely within at least one occurrence of at least one block
// in the calendar.
func (c Calendar) IsAvailableBetween(start, end time.Time) bool {
	for _, b := range c.blocks {
		if blockCovers(b, start, end) {
			return true
		}
	}
	return false
}

// blockCovers reports whether any occurrence of b covers [start, end).
// Occurrences beginning at or before start (going back one duration,
// to also catch an occurrence that started just before the window) are
// scanned for containment.
func blockCovers(b block, start, end time.Time) bool {
	occurrences := b.set.Between(start.Add(-b.duration), end, true)
	for _, occStart := range occurrences {
		occEnd := occStart.Add(b.duration)
		if !occStart.After(start) && !occEnd.Before(end) {
			return true
		}
	}
	return false
}
