// Package testutil provides small builders for constructing model
// components in tests without hand-typing a UID for every fixture.
package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/michael-gallo/icalscan/model"
)

// NewUID returns a fresh synthetic UID, suitable for fixtures that don't
// care about a specific identity.
func NewUID() string {
	return uuid.NewString()
}

// UTCEvent builds a minimal timed VEVENT: a DTSTART/DTEND pair both
// explicitly UTC, a random UID, and whatever RRULE strings are given.
func UTCEvent(start, end time.Time, rrule ...string) model.Event {
	return model.Event{
		BaseComponent: model.BaseComponent{UID: NewUID(), DTStamp: start},
		DtStart:       model.NewUTC(start),
		DtEnd:         model.NewUTC(end),
		Rrule:         rrule,
	}
}

// AllDayEvent builds a minimal all-day VEVENT spanning [start, end) by
// calendar date, DTEND exclusive per RFC 5545.
func AllDayEvent(start, end time.Time, rrule ...string) model.Event {
	return model.Event{
		BaseComponent: model.BaseComponent{UID: NewUID(), DTStamp: start},
		DtStart:       model.NewDate(start.Year(), start.Month(), start.Day()),
		DtEnd:         model.NewDate(end.Year(), end.Month(), end.Day()),
		Rrule:         rrule,
	}
}

// Override builds a VEVENT that overrides a single instance of parentUID
// at recurrenceID, per RFC 5545's RECURRENCE-ID mechanism.
func Override(parentUID string, recurrenceID time.Time, newStart, newEnd time.Time) model.Event {
	rid := model.NewUTC(recurrenceID)
	return model.Event{
		BaseComponent: model.BaseComponent{UID: parentUID, DTStamp: newStart},
		DtStart:       model.NewUTC(newStart),
		DtEnd:         model.NewUTC(newEnd),
		RecurID:       &rid,
	}
}
