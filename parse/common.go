package parse

import (
	"net/url"
	"time"

	"github.com/michael-gallo/icalscan/icaldur"
	"github.com/michael-gallo/icalscan/model"
)

// parseOrganizer builds an Organizer from an ORGANIZER property's value
// (a calendar address, typically "mailto:...") and parameters.
func parseOrganizer(value string, params map[string]string) *model.Organizer {
	org := &model.Organizer{
		CommonName: params["CN"],
		Directory:  params["DIR"],
	}
	if addr, err := url.Parse(value); err == nil {
		org.CalAddress = addr
	}
	return org
}

// parseDuration parses a DURATION property value, returning a *time.Duration
// pointer so callers can distinguish "absent" from "explicitly zero".
func parseDuration(value string) (*time.Duration, error) {
	d, err := icaldur.Parse(value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// icalStamp parses a DTSTAMP value, which RFC 5545 requires to be UTC but
// which some encoders emit without a trailing Z.
func icalStamp(value string) (time.Time, error) {
	if t, err := icaldur.ParseUTC(value); err == nil {
		return t, nil
	}
	return icaldur.ParseLocal(value)
}

// setExtensionProperty files an unrecognized property into the X- or
// IANA-token map, whichever applies, lazily allocating it.
func setExtensionProperty(xprop, ianaprop *map[string]string, name, value string) {
	target := ianaprop
	if len(name) >= 2 && name[:2] == "X-" {
		target = xprop
	}
	if *target == nil {
		*target = make(map[string]string)
	}
	(*target)[name] = value
}
