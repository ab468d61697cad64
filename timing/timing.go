// Package timing derives the canonical (start, end) pair and
// classification flags for a single calendar component.
package timing

import (
	"time"

	"github.com/michael-gallo/icalscan/model"
	"github.com/michael-gallo/icalscan/zone"
)

const oneDay = 24 * time.Hour

// Timing is the canonical derived timing for one component.
type Timing struct {
	Start           time.Time
	End             time.Time
	IsAllDay        bool
	IsMultiDay      bool
	IsSingleTimestamp bool
}

// Compute derives a component's canonical timing, applying RFC 5545's
// first-match-wins rules among DTSTART/DTEND/DUE/DURATION. tz is the
// component's already resolved effective zone (see
// zone.Resolver.ComponentZone).
func Compute(c model.Component, tz *time.Location, resolver *zone.Resolver) Timing {
	dtstart := c.DTStart()
	dtend := c.DTEnd()
	due := c.Due()
	explicitDur, hasExplicitDur := c.ICalDuration()

	allDayByDtstart := c.Kind() == model.KindEvent && dtstart.Kind == model.KindDateOnly

	var duration time.Duration
	switch {
	case hasExplicitDur:
		duration = explicitDur
	case allDayByDtstart && dtend.IsZero() && !hasExplicitDur && due.IsZero():
		duration = oneDay
	default:
		duration = 0
	}

	start := deriveStart(c, dtstart, due, duration, tz, resolver)
	end := deriveEnd(c, dtstart, dtend, due, duration, start, tz, resolver, allDayByDtstart)

	isAllDay := c.Kind() == model.KindEvent && (dtstart.Kind == model.KindDateOnly || (isMidnight(start) && isMidnight(end)))

	return Timing{
		Start:             start,
		End:               end,
		IsAllDay:          isAllDay,
		IsMultiDay:        isMultiDay(start, end),
		IsSingleTimestamp: start.Unix() == end.Unix(),
	}
}

func deriveStart(c model.Component, dtstart, due model.Value, duration time.Duration, tz *time.Location, resolver *zone.Resolver) time.Time {
	_, hasExplicitDur := c.ICalDuration()
	switch {
	case !dtstart.IsZero():
		return resolver.ToInstant(dtstart, tz)
	case !due.IsZero() && hasExplicitDur && duration > 0:
		return resolver.ToInstant(due, tz).Add(-duration)
	case !due.IsZero():
		return resolver.ToInstant(due, tz)
	default:
		return time.Unix(0, 0).In(tz)
	}
}

func deriveEnd(c model.Component, dtstart, dtend, due model.Value, duration time.Duration, start time.Time, tz *time.Location, resolver *zone.Resolver, allDayByDtstart bool) time.Time {
	switch {
	case !due.IsZero():
		return resolver.ToInstant(due, tz)
	case !dtend.IsZero():
		return resolver.ToInstant(dtend, tz)
	case !dtstart.IsZero() && allDayByDtstart && dtend.IsZero():
		days := int(duration / oneDay)
		startDate := resolver.ToInstant(dtstart, tz)
		d := startDate.AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, tz)
	case !dtstart.IsZero():
		return start.Add(duration)
	default:
		return time.Unix(0, 0).In(tz).Add(duration)
	}
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// isMultiDay reports whether end falls strictly after the start of the
// calendar day following start, both evaluated in start's own zone.
func isMultiDay(start, end time.Time) bool {
	loc := start.Location()
	nextDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)
	return end.After(nextDay)
}
