package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/michael-gallo/icalscan/model"
	"github.com/michael-gallo/icalscan/timing"
	"github.com/michael-gallo/icalscan/zone"
)

func newResolver() *zone.Resolver {
	return zone.NewResolver(nil)
}

func TestBuild_PlainRecurringEvent(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	e := &model.Event{
		BaseComponent: model.BaseComponent{UID: "series"},
		DtStart:       model.NewUTC(start),
		DtEnd:         model.NewUTC(end),
		Rrule:         []string{"FREQ=DAILY;COUNT=5"},
	}
	tm := timing.Compute(e, time.UTC, newResolver())

	s := Build(tm, time.UTC, e, nil, newResolver(), nil)
	assert.False(t, s.Singleton)
	assert.Equal(t, []string{"FREQ=DAILY;COUNT=5"}, s.Rules)
	assert.Equal(t, int64(3600), s.DurationSeconds)
}

func TestBuild_MalformedRuleIsDropped(t *testing.T) {
	start := model.NewUTC(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	e := &model.Event{
		BaseComponent: model.BaseComponent{UID: "series"},
		DtStart:       start,
		Rrule:         []string{"FREQ=DAILY;COUNT=5", "NOTVALID"},
	}
	tm := timing.Compute(e, time.UTC, newResolver())

	var warnings []string
	warn := func(format string, args ...any) { warnings = append(warnings, format) }
	s := Build(tm, time.UTC, e, nil, newResolver(), warn)
	assert.Equal(t, []string{"FREQ=DAILY;COUNT=5"}, s.Rules)
	assert.NotEmpty(t, warnings)
}

func TestBuild_NonRecurringIsSingleton(t *testing.T) {
	e := &model.Event{
		BaseComponent: model.BaseComponent{UID: "one-off"},
		DtStart:       model.NewUTC(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
	}
	tm := timing.Compute(e, time.UTC, newResolver())
	s := Build(tm, time.UTC, e, nil, newResolver(), nil)
	assert.True(t, s.Singleton)
}

func TestBuild_OverrideComponentIsSingleton(t *testing.T) {
	rid := model.NewUTC(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC))
	override := &model.Event{
		BaseComponent: model.BaseComponent{UID: "series"},
		DtStart:       model.NewUTC(time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)),
		RecurID:       &rid,
	}
	tm := timing.Compute(override, time.UTC, newResolver())
	s := Build(tm, time.UTC, override, nil, newResolver(), nil)
	assert.True(t, s.Singleton)
	assert.Equal(t, 14, s.BaseLocalStart.Hour())
}

func TestBuild_SiblingOverrideExcludesParentInstance(t *testing.T) {
	rid := model.NewUTC(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC))
	parent := &model.Event{
		BaseComponent: model.BaseComponent{UID: "series"},
		DtStart:       model.NewUTC(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)),
		Rrule:         []string{"FREQ=DAILY;COUNT=5"},
	}
	override := &model.Event{
		BaseComponent: model.BaseComponent{UID: "series"},
		DtStart:       model.NewUTC(time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC)),
		RecurID:       &rid,
	}
	tm := timing.Compute(parent, time.UTC, newResolver())
	s := Build(tm, time.UTC, parent, []model.Component{override}, newResolver(), nil)
	assert.Len(t, s.Excluded, 1)
	assert.True(t, s.Excluded[0].Equal(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)))
}
