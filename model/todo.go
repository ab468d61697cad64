// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strings"
	"time"
)

// TodoStatus represents the possible values for a VTODO's STATUS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type TodoStatus string

const (
	TodoStatusNeedsAction TodoStatus = "NEEDS-ACTION"
	TodoStatusCompleted   TodoStatus = "COMPLETED"
	TodoStatusInProcess   TodoStatus = "IN-PROCESS"
	TodoStatusCancelled   TodoStatus = "CANCELLED"
)

// Todo represents a VTODO component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.2
type Todo struct {
	BaseComponent

	Summary     string
	Description []string
	Location    string
	Status      TodoStatus
	Priority    int
	Sequence    int
	Categories  []string
	Comment     []string

	DtStart  Value
	DueAt    Value
	Dur      *time.Duration
	Rrule    []string
	Rdate    []Value
	Exdate   []Value
	RecurID  *Value
	Organizer *Organizer

	XProp    map[string]string
	IANAProp map[string]string
}

func (t *Todo) ComponentUID() string { return t.UID }
func (t *Todo) Kind() ComponentKind  { return KindTask }
func (t *Todo) DTStart() Value       { return t.DtStart }
func (t *Todo) DTEnd() Value         { return Value{} }
func (t *Todo) Due() Value           { return t.DueAt }

func (t *Todo) ICalDuration() (time.Duration, bool) {
	if t.Dur == nil {
		return 0, false
	}
	return *t.Dur, true
}

func (t *Todo) RRule() []string { return t.Rrule }
func (t *Todo) RDate() []Value  { return t.Rdate }
func (t *Todo) EXDate() []Value { return t.Exdate }

func (t *Todo) RecurrenceID() (Value, bool) {
	if t.RecurID == nil {
		return Value{}, false
	}
	return *t.RecurID, true
}

func (t *Todo) Property(name string) (any, bool) {
	switch strings.ToUpper(name) {
	case "SUMMARY":
		return t.Summary, t.Summary != ""
	case "DESCRIPTION":
		return t.Description, true
	case "LOCATION":
		return t.Location, t.Location != ""
	case "STATUS":
		return t.Status, t.Status != ""
	case "PRIORITY":
		return t.Priority, true
	case "SEQUENCE":
		return t.Sequence, true
	case "CATEGORIES":
		return t.Categories, true
	case "COMMENT":
		return t.Comment, true
	case "ORGANIZER":
		return t.Organizer, t.Organizer != nil
	case "UID":
		return t.UID, t.UID != ""
	case "DTSTAMP":
		return t.DTStamp, !t.DTStamp.IsZero()
	default:
		if v, ok := t.XProp[name]; ok {
			return v, true
		}
		if v, ok := t.IANAProp[name]; ok {
			return v, true
		}
		return nil, false
	}
}
