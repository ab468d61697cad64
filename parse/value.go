package parse

import (
	"fmt"
	"strings"

	"github.com/michael-gallo/icalscan/icaldur"
	"github.com/michael-gallo/icalscan/model"
)

// parseValue interprets one DATE or DATE-TIME property value together with
// its parameters, producing the ambiguity-preserving model.Value the
// resolver later normalizes. It never picks a zone itself, it only
// records which shape the encoder used.
func parseValue(value string, params map[string]string) (model.Value, error) {
	if params["VALUE"] == "DATE" {
		t, err := icaldur.ParseDate(value)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidTimeValue, value)
		}
		return model.NewDate(t.Year(), t.Month(), t.Day()), nil
	}

	if tzid, ok := params["TZID"]; ok {
		t, err := icaldur.ParseLocal(value)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidTimeValue, value)
		}
		return model.NewTZID(tzid, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()), nil
	}

	if strings.HasSuffix(value, "Z") {
		t, err := icaldur.ParseUTC(value)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidTimeValue, value)
		}
		return model.NewUTC(t), nil
	}

	if len(value) == len(icaldur.DateFormat) && !strings.Contains(value, "T") {
		t, err := icaldur.ParseDate(value)
		if err != nil {
			return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidTimeValue, value)
		}
		return model.NewDate(t.Year(), t.Month(), t.Day()), nil
	}

	t, err := icaldur.ParseLocal(value)
	if err != nil {
		return model.Value{}, fmt.Errorf("%w: %s", ErrInvalidTimeValue, value)
	}
	return model.NewFloating(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second()), nil
}

// parseValueList splits a comma-separated RDATE/EXDATE value into its
// individual date-or-datetime values, each resolved with the shared
// parameter set (RFC 5545 parameters apply to the whole property, not per
// element).
func parseValueList(value string, params map[string]string) ([]model.Value, error) {
	var out []model.Value
	for _, part := range strings.Split(value, ",") {
		v, err := parseValue(part, params)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
