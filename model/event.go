package model

import (
	"strings"
	"time"
)

// EventStatus represents the possible values for a VEVENT's STATUS field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.1.11
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "CONFIRMED"
	EventStatusTentative EventStatus = "TENTATIVE"
	EventStatusCancelled EventStatus = "CANCELLED"
)

// EventTransp represents a VEVENT's TRANSP field.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.8.2.7
type EventTransp string

const (
	EventTranspOpaque      EventTransp = "OPAQUE"
	EventTranspTransparent EventTransp = "TRANSPARENT"
)

// Event is a VEVENT component in the iCalendar format.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.1
type Event struct {
	BaseComponent

	Summary     string
	Description string
	Location    string
	Contact     string
	Status      EventStatus
	Transp      EventTransp
	Sequence    int
	Categories  []string
	Comment     []string

	DtStart  Value
	DtEnd    Value
	Dur      *time.Duration
	Rrule    []string
	Rdate    []Value
	Exdate   []Value
	RecurID  *Value
	Organizer *Organizer

	// XProp and IANAProp carry extension / IANA-registered properties not
	// modeled as dedicated fields, forwarded verbatim by Occurrence.
	XProp    map[string]string
	IANAProp map[string]string
}

func (e *Event) ComponentUID() string { return e.UID }
func (e *Event) Kind() ComponentKind  { return KindEvent }
func (e *Event) DTStart() Value       { return e.DtStart }
func (e *Event) DTEnd() Value         { return e.DtEnd }
func (e *Event) Due() Value           { return Value{} }

func (e *Event) ICalDuration() (time.Duration, bool) {
	if e.Dur == nil {
		return 0, false
	}
	return *e.Dur, true
}

func (e *Event) RRule() []string { return e.Rrule }
func (e *Event) RDate() []Value  { return e.Rdate }
func (e *Event) EXDate() []Value { return e.Exdate }

func (e *Event) RecurrenceID() (Value, bool) {
	if e.RecurID == nil {
		return Value{}, false
	}
	return *e.RecurID, true
}

func (e *Event) Property(name string) (any, bool) {
	switch strings.ToUpper(name) {
	case "SUMMARY":
		return e.Summary, e.Summary != ""
	case "DESCRIPTION":
		return e.Description, e.Description != ""
	case "LOCATION":
		return e.Location, e.Location != ""
	case "CONTACT":
		return e.Contact, e.Contact != ""
	case "STATUS":
		return e.Status, e.Status != ""
	case "TRANSP":
		return e.Transp, e.Transp != ""
	case "SEQUENCE":
		return e.Sequence, true
	case "CATEGORIES":
		return e.Categories, true
	case "COMMENT":
		return e.Comment, true
	case "ORGANIZER":
		return e.Organizer, e.Organizer != nil
	case "UID":
		return e.UID, e.UID != ""
	case "DTSTAMP":
		return e.DTStamp, !e.DTStamp.IsZero()
	default:
		if v, ok := e.XProp[name]; ok {
			return v, true
		}
		if v, ok := e.IANAProp[name]; ok {
			return v, true
		}
		return nil, false
	}
}
