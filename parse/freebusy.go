package parse

import (
	"fmt"
	"strings"

	"github.com/michael-gallo/icalscan/icaldur"
	"github.com/michael-gallo/icalscan/model"
)

var errInvalidFreeBusyFormat = fmt.Errorf("invalid FREEBUSY property format")

func parseFreeBusyProperty(name string, params map[string]string, value string, fb *model.FreeBusy) error {
	switch name {
	case "UID":
		fb.UID = value
	case "DTSTAMP":
		if t, err := icalStamp(value); err == nil {
			fb.DTStamp = t
		}
	case "CONTACT":
		fb.Contact = value
	case "URL":
		fb.URL = value
	case "DTSTART":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		fb.DtStart = v
	case "DTEND":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		fb.DtEnd = v
	case "COMMENT":
		fb.Comment = append(fb.Comment, value)
	case "FREEBUSY":
		slot, err := parseFreeBusyTime(value)
		if err != nil {
			return err
		}
		fb.Slots = append(fb.Slots, slot)
	default:
		setExtensionProperty(&fb.XProp, &fb.IANAProp, name, value)
	}
	return nil
}

// parseFreeBusyTime parses one FREEBUSY period: start "/" end, optionally
// followed by "/" status. Example: 19970101T180000Z/19970102T070000Z.
func parseFreeBusyTime(value string) (model.FreeBusyTime, error) {
	startStr, remaining, found := strings.Cut(value, "/")
	if !found {
		return model.FreeBusyTime{}, fmt.Errorf("%w: %s", errInvalidFreeBusyFormat, value)
	}
	start, err := icaldur.ParseUTC(startStr)
	if err != nil {
		return model.FreeBusyTime{}, fmt.Errorf("invalid FREEBUSY start: %w", err)
	}

	endStr, statusStr, hasStatus := strings.Cut(remaining, "/")
	end, err := icaldur.ParseUTC(endStr)
	if err != nil {
		return model.FreeBusyTime{}, fmt.Errorf("invalid FREEBUSY end: %w", err)
	}

	status := model.FreeBusyStatusBusy
	if hasStatus {
		status = model.FreeBusyStatus(statusStr)
	}
	return model.FreeBusyTime{Start: start, End: end, Status: status}, nil
}

func validateFreeBusy(fb *model.FreeBusy) error {
	if fb.UID == "" {
		return ErrMissingFreeBusyUID
	}
	return nil
}
