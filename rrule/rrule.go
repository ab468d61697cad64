// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package rrule validates RFC 5545 recurrence rule strings and adapts the
// external RRULE enumerator (github.com/teambition/rrule-go) the scan
// engine treats as a black box: given a local start and a rule string,
// produce successive local starts. The engine never re-implements FREQ
// enumeration itself — that stays external, treated as a black box.
//
// https://datatracker.ietf.org/doc/html/rfc5545#section-3.3.10
package rrule

import (
	"strconv"
	"strings"
)

type Frequency string

const (
	FrequencySecondly Frequency = "SECONDLY"
	FrequencyMinutely Frequency = "MINUTELY"
	FrequencyHourly   Frequency = "HOURLY"
	FrequencyDaily    Frequency = "DAILY"
	FrequencyWeekly   Frequency = "WEEKLY"
	FrequencyMonthly  Frequency = "MONTHLY"
	FrequencyYearly   Frequency = "YEARLY"
)

type Weekday string

const (
	WeekdayMonday    Weekday = "MO"
	WeekdayTuesday   Weekday = "TU"
	WeekdayWednesday Weekday = "WE"
	WeekdayThursday  Weekday = "TH"
	WeekdayFriday    Weekday = "FR"
	WeekdaySaturday  Weekday = "SA"
	WeekdaySunday    Weekday = "SU"
)

// Rule is the parsed, validated shape of an RRULE string. The engine does
// not use it to enumerate occurrences (that stays external); it uses it
// only to decide whether a rule string is well-formed enough to hand to
// the enumerator, so one malformed rule in a set can be dropped without
// losing the others.
type Rule struct {
	Frequency Frequency
	Interval  int
	Count     *int
	Until     *string
	Weekday   []ByDay
	Month     []int
	Monthday  []int
	YearDay   []int
}

type ByDay struct {
	Weekday  Weekday
	Interval int
}

// Parse validates an RRULE value string (without the leading "RRULE:"
// prefix) and returns its parsed shape, or an error describing why it is
// malformed.
func Parse(rruleString string) (*Rule, error) {
	rule := &Rule{Interval: 1}
	for part := range strings.SplitSeq(rruleString, ";") {
		tag, value, found := strings.Cut(part, "=")
		if !found {
			return nil, ErrInvalidRRuleString
		}
		switch tag {
		case "FREQ":
			rule.Frequency = Frequency(value)
		case "INTERVAL":
			interval, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rule.Interval = interval
		case "COUNT":
			count, err := strconv.Atoi(value)
			if err != nil {
				return nil, err
			}
			rule.Count = &count
		case "UNTIL":
			until := value
			rule.Until = &until
		case "BYDAY":
			weekdays := strings.Split(value, ",")
			rule.Weekday = make([]ByDay, 0, len(weekdays))
			for _, weekday := range weekdays {
				interval, wd, err := ParseByDay(weekday)
				if err != nil {
					return nil, err
				}
				rule.Weekday = append(rule.Weekday, ByDay{Weekday: wd, Interval: interval})
			}
		case "BYMONTH":
			if err := parseIntList(value, &rule.Month); err != nil {
				return nil, err
			}
		case "BYMONTHDAY":
			if err := parseIntList(value, &rule.Monthday); err != nil {
				return nil, err
			}
		case "BYYEARDAY":
			if err := parseIntList(value, &rule.YearDay); err != nil {
				return nil, err
			}
		}
	}
	if err := validate(rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func parseIntList(value string, out *[]int) error {
	*out = (*out)[:0]
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return err
		}
		*out = append(*out, n)
	}
	return nil
}

func validate(rule *Rule) error {
	if rule.Frequency == "" {
		return ErrFrequencyRequired
	}
	if rule.Count != nil && rule.Until != nil {
		return ErrCountAndUntilBothSet
	}
	if rule.Interval <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// ParseByDay parses a BYDAY value like "20MO" (interval + weekday) or
// "MO" (weekday only, interval defaults to 1).
func ParseByDay(byDayString string) (int, Weekday, error) {
	if byDayString == "" {
		return 0, "", ErrInvalidByDayString
	}

	if byDayString[0] >= '0' && byDayString[0] <= '9' || byDayString[0] == '-' {
		digitEnd := 0
		for i, char := range byDayString {
			if char < '0' || char > '9' {
				if char == '-' && i == 0 {
					continue
				}
				digitEnd = i
				break
			}
			digitEnd = i + 1
		}

		intervalStr := byDayString[:digitEnd]
		weekday := Weekday(byDayString[digitEnd:])

		if !isValidWeekday(weekday) {
			return 0, "", ErrInvalidByDayString
		}

		interval, err := strconv.Atoi(intervalStr)
		if err != nil {
			return 0, "", ErrInvalidByDayString
		}

		return interval, weekday, nil
	}

	if !isValidWeekday(Weekday(byDayString)) {
		return 0, "", ErrInvalidByDayString
	}

	return 1, Weekday(byDayString), nil
}

func isValidWeekday(weekday Weekday) bool {
	switch weekday {
	case WeekdayMonday, WeekdayTuesday, WeekdayWednesday, WeekdayThursday, WeekdayFriday, WeekdaySaturday, WeekdaySunday:
		return true
	default:
		return false
	}
}
