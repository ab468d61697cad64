package zone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michael-gallo/icalscan/model"
)

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestResolver_ToInstant_TZID(t *testing.T) {
	r := NewResolver(nil)
	v := model.NewTZID("America/New_York", 2025, time.June, 1, 9, 0, 0)
	got := r.ToInstant(v, time.UTC)
	assert.Equal(t, "America/New_York", got.Location().String())
	assert.Equal(t, 9, got.Hour())
}

func TestResolver_ToInstant_UnknownTZIDFallsBackToUTC(t *testing.T) {
	var warned string
	r := NewResolver(func(format string, args ...any) { warned = format })
	v := model.NewTZID("Not/AZone", 2025, time.June, 1, 9, 0, 0)
	got := r.ToInstant(v, time.UTC)
	assert.Equal(t, "UTC", got.Location().String())
	assert.NotEmpty(t, warned)
}

func TestResolver_ToInstant_Zoned(t *testing.T) {
	r := NewResolver(nil)
	ny := newYork(t)
	zoned := time.Date(2025, 6, 1, 9, 0, 0, 0, ny)
	v := model.NewDateTime(zoned)

	same := r.ToInstant(v, ny)
	assert.True(t, same.Equal(zoned))

	converted := r.ToInstant(v, time.UTC)
	assert.True(t, converted.Equal(zoned))
	assert.Equal(t, "UTC", converted.Location().String())
}

func TestResolver_ToInstant_UTC(t *testing.T) {
	r := NewResolver(nil)
	v := model.NewUTC(time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC))
	got := r.ToInstant(v, time.UTC)
	assert.Equal(t, 13, got.Hour())
}

func TestResolver_ToInstant_Floating(t *testing.T) {
	r := NewResolver(nil)
	v := model.NewFloating(2025, time.June, 1, 9, 0, 0)
	ny := newYork(t)
	got := r.ToInstant(v, ny)
	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, "America/New_York", got.Location().String())
}

func TestResolver_ToInstant_DateOnly(t *testing.T) {
	r := NewResolver(nil)
	v := model.NewDate(2025, time.June, 1)
	got := r.ToInstant(v, time.UTC)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 2025, got.Year())
}

func TestResolver_ToInstant_UnixSeconds(t *testing.T) {
	r := NewResolver(nil)
	v := model.NewUnixSeconds(0)
	got := r.ToInstant(v, time.UTC)
	assert.True(t, got.Equal(time.Unix(0, 0).UTC()))
}

func TestResolver_ComponentZone_PrefersExplicitTZID(t *testing.T) {
	r := NewResolver(nil)
	c := &fakeComponent{
		dtend:   model.NewTZID("America/New_York", 2025, time.June, 1, 9, 0, 0),
		dtstart: model.NewUTC(time.Now()),
	}
	loc := r.ComponentZone(c, nil)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestResolver_ComponentZone_UTCValueWinsOverCalendarTZID(t *testing.T) {
	r := NewResolver(nil)
	c := &fakeComponent{dtstart: model.NewUTC(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))}
	loc := r.ComponentZone(c, []string{"Europe/Paris"})
	assert.Equal(t, "UTC", loc.String())
}

func TestResolver_ComponentZone_FallsBackToCalendarTZID(t *testing.T) {
	r := NewResolver(nil)
	c := &fakeComponent{dtstart: model.NewFloating(2025, time.June, 1, 9, 0, 0)}
	loc := r.ComponentZone(c, []string{"Europe/Paris"})
	assert.Equal(t, "Europe/Paris", loc.String())
}

func TestResolver_ComponentZone_FallsBackToSystemThenUTC(t *testing.T) {
	r := NewResolver(nil)
	r.System = func() *time.Location { return time.UTC }
	c := &fakeComponent{dtstart: model.NewFloating(2025, time.June, 1, 9, 0, 0)}
	loc := r.ComponentZone(c, nil)
	assert.Equal(t, "UTC", loc.String())
}

// fakeComponent is a minimal model.Component stub for resolver tests that
// don't need a full Event/Todo.
type fakeComponent struct {
	dtstart, dtend, due model.Value
}

func (f *fakeComponent) ComponentUID() string                 { return "fake" }
func (f *fakeComponent) Kind() model.ComponentKind             { return model.KindEvent }
func (f *fakeComponent) DTStart() model.Value                  { return f.dtstart }
func (f *fakeComponent) DTEnd() model.Value                    { return f.dtend }
func (f *fakeComponent) Due() model.Value                      { return f.due }
func (f *fakeComponent) ICalDuration() (time.Duration, bool)   { return 0, false }
func (f *fakeComponent) RRule() []string                       { return nil }
func (f *fakeComponent) RDate() []model.Value                  { return nil }
func (f *fakeComponent) EXDate() []model.Value                 { return nil }
func (f *fakeComponent) RecurrenceID() (model.Value, bool)     { return model.Value{}, false }
func (f *fakeComponent) Property(string) (any, bool)           { return nil, false }
