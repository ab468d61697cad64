package icaldur

import "time"

// UTCDateTimeFormat is the standard iCal UTC datetime format.
// Format: YYYYMMDDTHHMMSSZ (e.g., 20250928T183000Z).
const UTCDateTimeFormat = "20060102T150405Z"

// LocalDateTimeFormat is the iCal datetime format without a zone marker,
// used for TZID-qualified and floating values.
const LocalDateTimeFormat = "20060102T150405"

// DateFormat is the iCal date-only format.
const DateFormat = "20060102"

// ParseUTC parses a trailing-Z iCal datetime string as UTC.
func ParseUTC(value string) (time.Time, error) {
	return time.Parse(UTCDateTimeFormat, value)
}

// ParseLocal parses an iCal datetime string with no zone marker, returning
// its wall-clock fields with an irrelevant (UTC) Location — callers
// re-anchor it to the correct zone themselves.
func ParseLocal(value string) (time.Time, error) {
	return time.ParseInLocation(LocalDateTimeFormat, value, time.UTC)
}

// ParseDate parses an iCal date-only string.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, time.UTC)
}
