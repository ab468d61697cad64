// Package zone resolves timezone identifiers to offset/DST rules and
// normalizes every time-shaped iCalendar input into a zoned instant.
package zone

import "time"

// Provider resolves a zone identifier to a *time.Location. It is the
// external collaborator the core delegates to — the core never maintains
// a timezone database itself, it only consumes one.
type Provider interface {
	Load(name string) (*time.Location, error)
}

// IANAProvider is the default Provider, backed by the system's IANA
// zoneinfo database via time.LoadLocation — the same mechanism every repo
// in the retrieved pack relies on for timezone handling.
type IANAProvider struct{}

func (IANAProvider) Load(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
