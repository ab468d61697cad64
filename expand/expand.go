// Package expand walks a recurrence schedule inside a window and maps
// each abstract instant back to a zoned (start, end) pair.
package expand

import (
	"sort"
	"time"

	"github.com/michael-gallo/icalscan/rrule"
	"github.com/michael-gallo/icalscan/schedule"
	"github.com/michael-gallo/icalscan/zone"
)

// Span is one materialized (start, end) pair.
type Span struct {
	Start time.Time
	End   time.Time
}

// Expander enumerates a schedule's occurrences inside [begin, end).
type Expander struct {
	Enumerator rrule.Enumerator
	Warn       zone.WarnFunc
}

// Expand returns every (start, end) pair of s that falls inside the
// half-open window [begin, end), ascending by (start, end), de-duplicated
// at second precision. An inverted or empty window yields nil.
func (e *Expander) Expand(s schedule.Schedule, begin, end time.Time) []Span {
	if !begin.Before(end) {
		return nil
	}

	duration := time.Duration(s.DurationSeconds) * time.Second
	days := int(s.DurationSeconds / int64((24 * time.Hour).Seconds()))

	var instants []time.Time
	if s.Singleton {
		instants = []time.Time{s.BaseLocalStart}
	} else {
		for _, rule := range s.Rules {
			times, err := e.Enumerator.Expand(s.BaseLocalStart, rule, end)
			if err != nil {
				if e.Warn != nil {
					e.Warn("RRULE enumeration failed for %q: %v", rule, err)
				}
				continue
			}
			instants = append(instants, times...)
		}
		instants = append(instants, s.Positive...)
	}

	excluded := make(map[int64]struct{}, len(s.Excluded))
	for _, t := range s.Excluded {
		excluded[t.Unix()] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(instants))
	spans := make([]Span, 0, len(instants))
	for _, inst := range instants {
		key := inst.Unix()
		if _, excl := excluded[key]; excl {
			continue
		}
		if inst.Before(begin) || !inst.Before(end) {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		spans = append(spans, Span{Start: inst, End: spanEnd(inst, duration, days, s.IsAllDay)})
	}

	sort.Slice(spans, func(i, j int) bool {
		if !spans[i].Start.Equal(spans[j].Start) {
			return spans[i].Start.Before(spans[j].Start)
		}
		return spans[i].End.Before(spans[j].End)
	})
	return spans
}

// spanEnd computes an occurrence's end instant. All-day components use
// calendar-date arithmetic (date + K days, at midnight) so a DST
// transition between start and end never perturbs the result; timed
// components use plain absolute-duration addition.
func spanEnd(start time.Time, duration time.Duration, days int, allDay bool) time.Time {
	if !allDay {
		return start.Add(duration)
	}
	d := start.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
