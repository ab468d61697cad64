package parse

import "github.com/michael-gallo/icalscan/model"

func parseJournalProperty(name string, params map[string]string, value string, journal *model.Journal) error {
	switch name {
	case "UID":
		journal.UID = value
	case "DTSTAMP":
		if t, err := icalStamp(value); err == nil {
			journal.DTStamp = t
		}
	case "DTSTART":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		journal.DtStart = v
	case "SUMMARY":
		journal.Summary = value
	case "STATUS":
		journal.Status = model.JournalStatus(value)
	case "CATEGORIES":
		journal.Categories = append(journal.Categories, csv(value)...)
	case "COMMENT":
		journal.Comment = append(journal.Comment, value)
	case "RRULE":
		journal.Rrule = append(journal.Rrule, value)
	case "RDATE":
		values, err := parseValueList(value, params)
		if err != nil {
			return err
		}
		journal.Rdate = append(journal.Rdate, values...)
	case "EXDATE":
		values, err := parseValueList(value, params)
		if err != nil {
			return err
		}
		journal.Exdate = append(journal.Exdate, values...)
	case "RECURRENCE-ID":
		v, err := parseValue(value, params)
		if err != nil {
			return err
		}
		journal.RecurID = &v
	default:
		setExtensionProperty(&journal.XProp, &journal.IANAProp, name, value)
	}
	return nil
}

func validateJournal(journal *model.Journal) error {
	if journal.UID == "" {
		return ErrMissingJournalUID
	}
	return nil
}
