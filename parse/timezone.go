package parse

import "github.com/michael-gallo/icalscan/model"

// parseTimezoneProperty handles both VTIMEZONE-level properties and the
// TZOFFSETFROM/TZOFFSETTO lines of its STANDARD/DAYLIGHT sub-blocks,
// flattened onto the same model.TimeZone (the engine only ever reads
// TimeZoneID; the offsets exist for round-tripping, see model.TimeZone).
func parseTimezoneProperty(name, value string, tz *model.TimeZone) {
	switch name {
	case "TZID":
		tz.TimeZoneID = value
	case "TZOFFSETFROM":
		tz.TimeZoneOffsetFrom = value
	case "TZOFFSETTO":
		tz.TimeZoneOffsetTo = value
	}
}
