// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

import (
	"strings"
	"time"
)

// JournalStatus represents the possible values for a VJOURNAL's STATUS
// field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type JournalStatus string

const (
	JournalStatusDraft     JournalStatus = "DRAFT"
	JournalStatusFinal     JournalStatus = "FINAL"
	JournalStatusCancelled JournalStatus = "CANCELLED"
)

// Journal represents a VJOURNAL component. It never occupies calendar time
// (no DTEND/DUE/DURATION in the standard), but the engine still gives it a
// canonical (start,end) pair — both equal to DTSTART — so it can be
// scanned and ordered uniformly with the other kinds.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.3
type Journal struct {
	BaseComponent

	Summary    string
	Status     JournalStatus
	Categories []string
	Comment    []string

	DtStart Value
	Rrule   []string
	Rdate   []Value
	Exdate  []Value
	RecurID *Value

	XProp    map[string]string
	IANAProp map[string]string
}

func (j *Journal) ComponentUID() string { return j.UID }
func (j *Journal) Kind() ComponentKind  { return KindJournal }
func (j *Journal) DTStart() Value       { return j.DtStart }
func (j *Journal) DTEnd() Value         { return Value{} }
func (j *Journal) Due() Value           { return Value{} }

func (j *Journal) ICalDuration() (time.Duration, bool) { return 0, false }

func (j *Journal) RRule() []string { return j.Rrule }
func (j *Journal) RDate() []Value  { return j.Rdate }
func (j *Journal) EXDate() []Value { return j.Exdate }

func (j *Journal) RecurrenceID() (Value, bool) {
	if j.RecurID == nil {
		return Value{}, false
	}
	return *j.RecurID, true
}

func (j *Journal) Property(name string) (any, bool) {
	switch strings.ToUpper(name) {
	case "SUMMARY":
		return j.Summary, j.Summary != ""
	case "STATUS":
		return j.Status, j.Status != ""
	case "CATEGORIES":
		return j.Categories, true
	case "COMMENT":
		return j.Comment, true
	case "UID":
		return j.UID, j.UID != ""
	case "DTSTAMP":
		return j.DTStamp, !j.DTStamp.IsZero()
	default:
		if v, ok := j.XProp[name]; ok {
			return v, true
		}
		if v, ok := j.IANAProp[name]; ok {
			return v, true
		}
		return nil, false
	}
}
