// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strings"
	"time"
)

// FreeBusyStatus represents the possible values for a VFREEBUSY's
// FREEBUSY property.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.6
type FreeBusyStatus string

const (
	FreeBusyStatusFree            FreeBusyStatus = "FREE"
	FreeBusyStatusBusy            FreeBusyStatus = "BUSY"
	FreeBusyStatusBusyTentative   FreeBusyStatus = "BUSY-TENTATIVE"
	FreeBusyStatusBusyUnavailable FreeBusyStatus = "BUSY-UNAVAILABLE"
)

// FreeBusyTime is a single free/busy interval with its status.
type FreeBusyTime struct {
	Start  time.Time
	End    time.Time
	Status FreeBusyStatus
}

// FreeBusy represents a VFREEBUSY component. The engine only forwards it
// (§1's "modeled as forwardable components" non-goal) — it never carries
// RRULE/RDATE/EXDATE of its own, so its schedule is always the single
// instant described by its own DTSTART/DTEND.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.4
type FreeBusy struct {
	BaseComponent

	Contact  string
	DtStart  Value
	DtEnd    Value
	URL      string
	Slots    []FreeBusyTime
	Comment  []string

	XProp    map[string]string
	IANAProp map[string]string
}

func (f *FreeBusy) ComponentUID() string { return f.UID }
func (f *FreeBusy) Kind() ComponentKind  { return KindFreeBusy }
func (f *FreeBusy) DTStart() Value       { return f.DtStart }
func (f *FreeBusy) DTEnd() Value         { return f.DtEnd }
func (f *FreeBusy) Due() Value           { return Value{} }

func (f *FreeBusy) ICalDuration() (time.Duration, bool) { return 0, false }
func (f *FreeBusy) RRule() []string                     { return nil }
func (f *FreeBusy) RDate() []Value                      { return nil }
func (f *FreeBusy) EXDate() []Value                     { return nil }
func (f *FreeBusy) RecurrenceID() (Value, bool)         { return Value{}, false }

func (f *FreeBusy) Property(name string) (any, bool) {
	switch strings.ToUpper(name) {
	case "CONTACT":
		return f.Contact, f.Contact != ""
	case "URL":
		return f.URL, f.URL != ""
	case "FREEBUSY":
		return f.Slots, true
	case "COMMENT":
		return f.Comment, true
	case "UID":
		return f.UID, f.UID != ""
	case "DTSTAMP":
		return f.DTStamp, !f.DTStamp.IsZero()
	default:
		if v, ok := f.XProp[name]; ok {
			return v, true
		}
		if v, ok := f.IANAProp[name]; ok {
			return v, true
		}
		return nil, false
	}
}
