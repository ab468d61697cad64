// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package model contains data structures representing iCalendar
// components.
package model

// Calendar represents a VCALENDAR component: an unordered collection of
// components plus zero or more embedded VTIMEZONE definitions.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.4
type Calendar struct {
	Version  string
	ProdID   string
	CalScale string
	Method   string

	TimeZones []TimeZone

	Events    []Event
	Todos     []Todo
	Journals  []Journal
	FreeBusys []FreeBusy
}

// Components returns every component of the given kind as the narrow
// Component interface the scan engine consumes. Unknown kinds yield nil
// (the caller, scan.Scan, is responsible for rejecting unknown kinds with
// ErrInvalidKind before calling this).
func (c *Calendar) Components(kind ComponentKind) []Component {
	switch kind {
	case KindEvent:
		out := make([]Component, len(c.Events))
		for i := range c.Events {
			out[i] = &c.Events[i]
		}
		return out
	case KindTask:
		out := make([]Component, len(c.Todos))
		for i := range c.Todos {
			out[i] = &c.Todos[i]
		}
		return out
	case KindJournal:
		out := make([]Component, len(c.Journals))
		for i := range c.Journals {
			out[i] = &c.Journals[i]
		}
		return out
	case KindFreeBusy:
		out := make([]Component, len(c.FreeBusys))
		for i := range c.FreeBusys {
			out[i] = &c.FreeBusys[i]
		}
		return out
	default:
		return nil
	}
}

// TZIDs returns the TZID of every embedded VTIMEZONE, in declaration
// order, skipping any without one set.
func (c *Calendar) TZIDs() []string {
	ids := make([]string, 0, len(c.TimeZones))
	for _, tz := range c.TimeZones {
		if tz.TimeZoneID != "" {
			ids = append(ids, tz.TimeZoneID)
		}
	}
	return ids
}

// Siblings returns every component of the same kind sharing uid, used by
// schedule.Build to find RECURRENCE-ID overrides of a given parent.
func (c *Calendar) Siblings(kind ComponentKind, uid string) []Component {
	var out []Component
	for _, comp := range c.Components(kind) {
		if comp.ComponentUID() == uid {
			out = append(out, comp)
		}
	}
	return out
}
