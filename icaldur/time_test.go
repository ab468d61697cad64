package icaldur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseUTC(t *testing.T) {
	got, err := ParseUTC("20250601T090000Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), got)

	_, err = ParseUTC("20250601T090000")
	assert.Error(t, err)
}

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("20250601T090000")
	assert.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, 9, got.Hour())
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("20250601")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
