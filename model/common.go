// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"net/url"
	"time"
)

// ComponentKind distinguishes the four iCalendar component variants the
// engine recognizes.
type ComponentKind string

const (
	KindEvent    ComponentKind = "VEVENT"
	KindTask     ComponentKind = "VTODO"
	KindJournal  ComponentKind = "VJOURNAL"
	KindFreeBusy ComponentKind = "VFREEBUSY"
)

// Organizer represents an ORGANIZER property, shared by VEVENT, VTODO, and
// VJOURNAL.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.3
type Organizer struct {
	CommonName string
	CalAddress *url.URL
	Directory  string
}

// BaseComponent holds the fields common to every top-level calendar
// component.
type BaseComponent struct {
	DTStamp time.Time
	UID     string
}

// Contact is free-form contact text, usable in Events, Todos, Journals,
// and FreeBusy components.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.4.2
type Contact = string

// Component is the narrow read capability the scan engine requires of a
// calendar component (the "Calendar/component adapter" of §6.A). It is
// satisfied by *Event, *Todo, *Journal, and *FreeBusy; nothing about it
// requires a parser — any in-memory construction works.
type Component interface {
	// ComponentUID returns the component's UID. Required; opaque.
	ComponentUID() string
	// Kind reports which of the four variants this component is.
	Kind() ComponentKind
	// DTStart returns the DTSTART value, or the zero Value if absent.
	DTStart() Value
	// DTEnd returns the DTEND value (Events only), or the zero Value.
	DTEnd() Value
	// Due returns the DUE value (Tasks only), or the zero Value.
	Due() Value
	// ICalDuration returns the parsed DURATION, and whether it was present.
	ICalDuration() (time.Duration, bool)
	// RRule returns the component's zero or more RRULE strings, verbatim.
	RRule() []string
	// RDate returns the component's RDATE values.
	RDate() []Value
	// EXDate returns the component's EXDATE values.
	EXDate() []Value
	// RecurrenceID returns the component's RECURRENCE-ID, if any, and
	// whether one was set.
	RecurrenceID() (Value, bool)
	// Property forwards a read of an arbitrary named property (SUMMARY,
	// LOCATION, CONTACT, X-*, ...). An unset single-valued property returns
	// its field's zero value and false; a multi-valued property always
	// returns true, with an empty slice when unset; an unknown name,
	// including an unset X- property, returns (nil, false).
	Property(name string) (any, bool)
}
