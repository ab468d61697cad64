package occurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/michael-gallo/icalscan/model"
)

func TestOccurrence_PropertyForwarding(t *testing.T) {
	e := &model.Event{
		BaseComponent: model.BaseComponent{UID: "abc"},
		Summary:       "Standup",
	}
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	o := New(nil, e, start, start.Add(time.Hour))

	v, ok := o.Property("SUMMARY")
	assert.True(t, ok)
	assert.Equal(t, "Standup", v)

	_, ok = o.Property("LOCATION")
	assert.False(t, ok)
}

func TestOccurrence_SetPropertyAlwaysFails(t *testing.T) {
	o := New(nil, &model.Event{}, time.Now(), time.Now())
	err := o.SetProperty("SUMMARY", "anything")
	assert.ErrorIs(t, err, ErrUnsupportedWrite)
}

func TestOccurrence_Ordering(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	early := New(nil, &model.Event{}, base, base.Add(time.Hour))
	late := New(nil, &model.Event{}, base.Add(time.Hour), base.Add(2*time.Hour))

	assert.True(t, early.Before(late))
	assert.False(t, late.Before(early))
	assert.True(t, early.Equal(early))
	assert.Equal(t, -1, Compare(early, late))
}

func TestOccurrence_OrderingTiesBreakOnEnd(t *testing.T) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	shorter := New(nil, &model.Event{}, base, base.Add(time.Hour))
	longer := New(nil, &model.Event{}, base, base.Add(2*time.Hour))

	assert.True(t, shorter.Before(longer))
}
