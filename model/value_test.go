package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValue_IsZero(t *testing.T) {
	assert.True(t, Value{}.IsZero())
	assert.False(t, NewUTC(time.Now()).IsZero())
}

func TestNewTZID_NormalizesQuotesAndMultiValue(t *testing.T) {
	v := NewTZID(`"America/New_York,America/Chicago"`, 2025, time.June, 1, 9, 0, 0)
	assert.Equal(t, "America/New_York", v.TZID)
	assert.Equal(t, KindTZID, v.Kind)
}

func TestNewTZID_PlainName(t *testing.T) {
	v := NewTZID("Europe/Paris", 2025, time.January, 1, 0, 0, 0)
	assert.Equal(t, "Europe/Paris", v.TZID)
}

func TestNewFloating(t *testing.T) {
	v := NewFloating(2025, time.March, 9, 2, 30, 0)
	assert.Equal(t, KindFloating, v.Kind)
	assert.Equal(t, 2, v.Wall.Hour())
}

func TestNewDate(t *testing.T) {
	v := NewDate(2025, time.December, 25)
	assert.Equal(t, KindDateOnly, v.Kind)
	assert.Equal(t, 0, v.Wall.Hour())
}

func TestNewUnixSeconds(t *testing.T) {
	v := NewUnixSeconds(1717200000)
	assert.Equal(t, KindUnixSeconds, v.Kind)
	assert.Equal(t, int64(1717200000), v.Unix)
}
