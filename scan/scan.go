// Package scan wires the resolver, timing, schedule, and expansion stages
// together into a single entry point: given a calendar, a window, and a
// set of component kinds, produce every occurrence that falls inside the
// window, in ascending order.
package scan

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/michael-gallo/icalscan/expand"
	"github.com/michael-gallo/icalscan/model"
	"github.com/michael-gallo/icalscan/occurrence"
	"github.com/michael-gallo/icalscan/rrule"
	"github.com/michael-gallo/icalscan/schedule"
	"github.com/michael-gallo/icalscan/timing"
	"github.com/michael-gallo/icalscan/zone"
)

// ErrInvalidKind is returned when Options.Kinds names a ComponentKind the
// engine does not recognize.
var ErrInvalidKind = errors.New("scan: invalid component kind")

var validKinds = map[model.ComponentKind]bool{
	model.KindEvent:    true,
	model.KindTask:     true,
	model.KindJournal:  true,
	model.KindFreeBusy: true,
}

// Options configures a Scan call. Kinds defaults to {VEVENT} when nil,
// since most calendars are scanned for events.
type Options struct {
	Kinds []model.ComponentKind
	// Warn receives tolerated-error diagnostics (InvalidZone, MalformedRule,
	// UnreadableTimeValue). A nil Warn silently drops them.
	Warn zone.WarnFunc
	// Resolver overrides the TimeResolver used for this scan. A nil value
	// builds a default zone.NewResolver(opts.Warn).
	Resolver *zone.Resolver
	// Enumerator overrides the RRULE enumerator. A nil value uses
	// rrule.TeambitionEnumerator{}.
	Enumerator rrule.Enumerator
}

func (o Options) kinds() []model.ComponentKind {
	if len(o.Kinds) == 0 {
		return []model.ComponentKind{model.KindEvent}
	}
	return o.Kinds
}

// Scan returns every occurrence of cal's selected component kinds whose
// start falls inside the half-open window [begin, end). An inverted or
// empty window (begin >= end) yields a non-nil, empty slice rather than an
// error. An unrecognized kind in opts.Kinds fails the whole call with
// ErrInvalidKind before any expansion work begins.
func Scan(cal *model.Calendar, begin, end time.Time, opts Options) ([]occurrence.Occurrence, error) {
	kinds := opts.kinds()
	for _, k := range kinds {
		if !validKinds[k] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKind, k)
		}
	}

	result := make([]occurrence.Occurrence, 0)
	if !begin.Before(end) {
		return result, nil
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = zone.NewResolver(opts.Warn)
	}
	enumerator := opts.Enumerator
	if enumerator == nil {
		enumerator = rrule.TeambitionEnumerator{}
	}
	expander := &expand.Expander{Enumerator: enumerator, Warn: opts.Warn}

	calTZIDs := cal.TZIDs()

	for _, kind := range kinds {
		components := cal.Components(kind)
		for _, c := range components {
			tz := resolver.ComponentZone(c, calTZIDs)
			t := timing.Compute(c, tz, resolver)
			siblings := cal.Siblings(kind, c.ComponentUID())
			s := schedule.Build(t, tz, c, siblings, resolver, opts.Warn)

			for _, span := range expander.Expand(s, begin, end) {
				result = append(result, occurrence.New(cal, c, span.Start, span.End))
			}
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return occurrence.Compare(result[i], result[j]) < 0
	})
	return result, nil
}
