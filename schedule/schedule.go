// Package schedule assembles a recurrence schedule from a component's
// RRULE/RDATE/EXDATE/RECURRENCE-ID properties and its sibling overrides.
package schedule

import (
	"strings"
	"time"

	"github.com/michael-gallo/icalscan/model"
	"github.com/michael-gallo/icalscan/rrule"
	"github.com/michael-gallo/icalscan/timing"
	"github.com/michael-gallo/icalscan/zone"
)

// Schedule describes the logical set of times a component materializes
// at, ready for the expander to walk within a window.
type Schedule struct {
	// BaseLocalStart is the wall-clock anchor for rule enumeration — the
	// component's own start_time, already in its effective zone.
	BaseLocalStart time.Time
	Zone           *time.Location
	DurationSeconds int64
	// Rules holds the verbatim, individually-validated RRULE strings.
	// Malformed rules are dropped before reaching here.
	Rules []string
	// Positive holds the resolved instants contributed by RDATE.
	Positive []time.Time
	// Excluded holds the resolved instants contributed by EXDATE plus any
	// sibling RECURRENCE-ID overrides (an override suppresses the
	// parent's instance at that time).
	Excluded []time.Time
	// Singleton is true when the schedule has exactly one instant — its
	// own base start — either because the component is itself a
	// RECURRENCE-ID override (a one-off, never suppressed by its own
	// RECURRENCE-ID) or because it carries no RRULE/RDATE/RECURRENCE-ID
	// at all.
	Singleton bool
	// IsAllDay carries the component's all-day classification through to
	// the expander, which must compute each occurrence's end by calendar-
	// date arithmetic rather than absolute-duration addition for all-day
	// components.
	IsAllDay bool
}

// Build constructs the schedule for one component, given its already
// computed canonical timing, its effective zone, and its siblings sharing
// the same UID (used to find overrides).
func Build(t timing.Timing, tz *time.Location, c model.Component, siblings []model.Component, resolver *zone.Resolver, warn zone.WarnFunc) Schedule {
	duration := int64(t.End.Sub(t.Start) / time.Second)

	if _, isOverride := c.RecurrenceID(); isOverride {
		return Schedule{
			BaseLocalStart:  t.Start,
			Zone:            tz,
			DurationSeconds: duration,
			Singleton:       true,
			IsAllDay:        t.IsAllDay,
		}
	}

	var rules []string
	for _, raw := range c.RRule() {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if _, err := rrule.Parse(trimmed); err != nil {
			if warn != nil {
				warn("dropping malformed RRULE %q: %v", trimmed, err)
			}
			continue
		}
		rules = append(rules, trimmed)
	}

	var positive []time.Time
	for _, v := range c.RDate() {
		positive = append(positive, resolver.ToInstant(v, tz))
	}

	var excluded []time.Time
	for _, v := range c.EXDate() {
		excluded = append(excluded, resolver.ToInstant(v, tz))
	}
	uid := c.ComponentUID()
	for _, sibling := range siblings {
		if sibling.ComponentUID() != uid {
			continue
		}
		recID, ok := sibling.RecurrenceID()
		if !ok {
			continue
		}
		excluded = append(excluded, resolver.ToInstant(recID, tz))
	}

	singleton := len(rules) == 0 && len(positive) == 0

	return Schedule{
		BaseLocalStart:  t.Start,
		Zone:            tz,
		DurationSeconds: duration,
		Rules:           rules,
		Positive:        positive,
		Excluded:        excluded,
		Singleton:       singleton,
		IsAllDay:        t.IsAllDay,
	}
}
