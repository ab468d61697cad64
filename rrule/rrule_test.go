package rrule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("valid weekly rule", func(t *testing.T) {
		rule, err := Parse("FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR;COUNT=10")
		assert.NoError(t, err)
		assert.Equal(t, FrequencyWeekly, rule.Frequency)
		assert.Equal(t, 2, rule.Interval)
		assert.Equal(t, []ByDay{
			{Weekday: WeekdayMonday, Interval: 1},
			{Weekday: WeekdayWednesday, Interval: 1},
			{Weekday: WeekdayFriday, Interval: 1},
		}, rule.Weekday)
		assert.Equal(t, 10, *rule.Count)
	})

	t.Run("default interval", func(t *testing.T) {
		rule, err := Parse("FREQ=DAILY")
		assert.NoError(t, err)
		assert.Equal(t, 1, rule.Interval)
	})

	t.Run("until and count are mutually exclusive", func(t *testing.T) {
		_, err := Parse("FREQ=DAILY;COUNT=5;UNTIL=20251231T000000Z")
		assert.ErrorIs(t, err, ErrCountAndUntilBothSet)
	})

	t.Run("missing frequency", func(t *testing.T) {
		_, err := Parse("INTERVAL=2")
		assert.ErrorIs(t, err, ErrFrequencyRequired)
	})

	t.Run("zero interval rejected", func(t *testing.T) {
		_, err := Parse("FREQ=DAILY;INTERVAL=0")
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("bymonth list", func(t *testing.T) {
		rule, err := Parse("FREQ=YEARLY;BYMONTH=1,6,12")
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 6, 12}, rule.Month)
	})

	t.Run("malformed part has no equals sign", func(t *testing.T) {
		_, err := Parse("FREQ")
		assert.ErrorIs(t, err, ErrInvalidRRuleString)
	})
}

func TestParseByDay(t *testing.T) {
	t.Run("weekday only", func(t *testing.T) {
		interval, wd, err := ParseByDay("MO")
		assert.NoError(t, err)
		assert.Equal(t, 1, interval)
		assert.Equal(t, WeekdayMonday, wd)
	})

	t.Run("ordinal weekday", func(t *testing.T) {
		interval, wd, err := ParseByDay("-1SU")
		assert.NoError(t, err)
		assert.Equal(t, -1, interval)
		assert.Equal(t, WeekdaySunday, wd)
	})

	t.Run("invalid weekday", func(t *testing.T) {
		_, _, err := ParseByDay("XX")
		assert.ErrorIs(t, err, ErrInvalidByDayString)
	})

	t.Run("empty string", func(t *testing.T) {
		_, _, err := ParseByDay("")
		assert.ErrorIs(t, err, ErrInvalidByDayString)
	})
}
