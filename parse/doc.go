// Package parse turns RFC 5545 iCalendar text into a model.Calendar, the
// in-memory form the scan engine consumes.
//
// It is line-oriented rather than a full grammar parser: each content line
// is split into a property name, its parameters, and its value, then
// dispatched to a per-component switch. Unfolding of continuation lines
// (a leading space or tab) happens before that split.
package parse
