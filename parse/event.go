package parse

import (
	"strconv"

	"github.com/michael-gallo/icalscan/model"
)

func parseEventProperty(name string, params map[string]string, value string, event *model.Event) error {
	switch name {
	case "UID":
		event.UID = value
	case "DTSTAMP":
		if t, err := icalStamp(value); err == nil {
			event.DTStamp = t
		}
	case "DTSTART":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		event.DtStart = v
	case "DTEND":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		event.DtEnd = v
	case "DURATION":
		d, err := parseDuration(value)
		if err != nil {
			return err
		}
		event.Dur = d
	case "SUMMARY":
		event.Summary = value
	case "DESCRIPTION":
		event.Description = value
	case "LOCATION":
		event.Location = value
	case "CONTACT":
		event.Contact = value
	case "STATUS":
		event.Status = model.EventStatus(value)
	case "TRANSP":
		event.Transp = model.EventTransp(value)
	case "SEQUENCE":
		if n, err := strconv.Atoi(value); err == nil {
			event.Sequence = n
		}
	case "CATEGORIES":
		event.Categories = append(event.Categories, csv(value)...)
	case "COMMENT":
		event.Comment = append(event.Comment, value)
	case "ORGANIZER":
		event.Organizer = parseOrganizer(value, params)
	case "RRULE":
		event.Rrule = append(event.Rrule, value)
	case "RDATE":
		values, err := parseValueList(value, params)
		if err != nil {
			return err
		}
		event.Rdate = append(event.Rdate, values...)
	case "EXDATE":
		values, err := parseValueList(value, params)
		if err != nil {
			return err
		}
		event.Exdate = append(event.Exdate, values...)
	case "RECURRENCE-ID":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		event.RecurID = &v
	default:
		setExtensionProperty(&event.XProp, &event.IANAProp, name, value)
	}
	return nil
}

func validateEvent(event *model.Event) error {
	if event.UID == "" {
		return ErrMissingEventUID
	}
	return nil
}
