// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package model

// TimeZone represents a VTIMEZONE component. The engine only ever reads
// its TimeZoneID — the offset/DST rule fields exist for round-tripping
// but the core resolves actual offsets through a zone.Provider (normally
// the system's IANA zoneinfo database), not by interpreting these raw
// TZOFFSETFROM/TZOFFSETTO strings itself.
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.6.5
type TimeZone struct {
	TimeZoneID          string
	TimeZoneOffsetFrom  string
	TimeZoneOffsetTo    string
}
