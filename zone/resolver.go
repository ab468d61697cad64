package zone

import (
	"time"

	"github.com/michael-gallo/icalscan/model"
)

// WarnFunc receives a human-readable warning for a tolerated error
// (InvalidZone, MalformedRule, UnreadableTimeValue never surface as Go
// errors — they degrade and log). A nil WarnFunc silently drops warnings.
type WarnFunc func(format string, args ...any)

// Resolver normalizes every time-shaped input to a zoned instant and
// determines the effective zone for a component.
type Resolver struct {
	Provider Provider
	Warn     WarnFunc
	// System lazily provides the detected system zone; tests override
	// this so system zone detection never has to be monkey-patched.
	System func() *time.Location
}

// NewResolver builds a Resolver with the default IANA provider and the
// real system zone detector.
func NewResolver(warn WarnFunc) *Resolver {
	provider := IANAProvider{}
	return &Resolver{
		Provider: provider,
		Warn:     warn,
		System:   func() *time.Location { return SystemZone(provider) },
	}
}

func (r *Resolver) warnf(format string, args ...any) {
	if r.Warn != nil {
		r.Warn(format, args...)
	}
}

// EnsureZone resolves a zone by name, falling back to UTC and logging a
// warning if the name is unknown. It never fails.
func (r *Resolver) EnsureZone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := r.Provider.Load(name)
	if err != nil {
		r.warnf("unknown timezone %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// ToInstant normalizes an ical value into a zoned instant, applying the
// following priority rules:
//
//  1. Explicit TZID -> interpret local fields in that zone.
//  2. Already-zoned -> return unchanged if its zone equals target, else
//     convert preserving the absolute instant.
//  3. Floating (offset zero, not UTC-marked) -> interpret local fields in
//     target (wall-clock preserving, not UTC-preserving).
//  4. Date-only -> midnight in target.
//  5. Integer UNIX seconds -> project into target.
//  6. Anything else -> epoch projected into target (never raises).
func (r *Resolver) ToInstant(v model.Value, target *time.Location) time.Time {
	if target == nil {
		target = time.UTC
	}
	switch v.Kind {
	case model.KindTZID:
		zone := r.EnsureZone(v.TZID)
		return reanchor(v.Wall, zone)
	case model.KindZoned:
		loc := v.Wall.Location()
		if loc == nil {
			loc = time.UTC
		}
		if sameZone(loc, target) {
			return v.Wall
		}
		return v.Wall.In(target)
	case model.KindUTC:
		if target == time.UTC {
			return v.Wall.UTC()
		}
		return v.Wall.In(target)
	case model.KindFloating:
		return reanchor(v.Wall, target)
	case model.KindDateOnly:
		return time.Date(v.Wall.Year(), v.Wall.Month(), v.Wall.Day(), 0, 0, 0, 0, target)
	case model.KindUnixSeconds:
		return time.Unix(v.Unix, 0).In(target)
	default:
		r.warnf("unreadable time value, degrading to epoch in %s", target)
		return time.Unix(0, 0).In(target)
	}
}

// ComponentZone resolves the effective zone for a component, applying in
// order: the TZID of DTEND, DTSTART, or DUE; an already-zoned or
// "Z"-suffixed UTC value among those three; the first valid TZID of the
// enclosing calendar's VTIMEZONE blocks; the detected system zone; UTC.
func (r *Resolver) ComponentZone(c model.Component, calendarTZIDs []string) *time.Location {
	candidates := []model.Value{c.DTEnd(), c.DTStart(), c.Due()}

	for _, v := range candidates {
		if v.Kind == model.KindTZID && v.TZID != "" {
			return r.EnsureZone(v.TZID)
		}
	}
	for _, v := range candidates {
		switch v.Kind {
		case model.KindZoned:
			loc := v.Wall.Location()
			if loc != nil {
				return loc
			}
		case model.KindUTC:
			return time.UTC
		}
	}
	for _, tzid := range calendarTZIDs {
		if tzid == "" {
			continue
		}
		loc, err := r.Provider.Load(tzid)
		if err != nil {
			r.warnf("unknown calendar timezone %q, skipping: %v", tzid, err)
			continue
		}
		return loc
	}
	if r.System != nil {
		return r.System()
	}
	return time.UTC
}

func sameZone(a, b *time.Location) bool {
	if a == b {
		return true
	}
	return a.String() == b.String()
}

// reanchor reinterprets t's wall-clock fields (Y/M/D/h/m/s) in loc,
// discarding whatever location t previously carried.
func reanchor(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
