package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeambitionEnumerator_Expand(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	e := TeambitionEnumerator{}

	t.Run("daily rule is accepted without the RRULE: prefix", func(t *testing.T) {
		times, err := e.Expand(base, "FREQ=DAILY;COUNT=3", until)
		require.NoError(t, err)
		require.Len(t, times, 3)
		assert.True(t, times[0].Equal(base))
		assert.True(t, times[1].Equal(base.AddDate(0, 0, 1)))
		assert.True(t, times[2].Equal(base.AddDate(0, 0, 2)))
	})

	t.Run("prefixed rule is accepted too", func(t *testing.T) {
		times, err := e.Expand(base, "RRULE:FREQ=DAILY;COUNT=2", until)
		require.NoError(t, err)
		assert.Len(t, times, 2)
	})

	t.Run("empty rule string errors", func(t *testing.T) {
		_, err := e.Expand(base, "", until)
		assert.ErrorIs(t, err, ErrInvalidRRuleString)
	})

	t.Run("until before base yields no error and no instants", func(t *testing.T) {
		times, err := e.Expand(base, "FREQ=DAILY", base.AddDate(0, 0, -1))
		assert.NoError(t, err)
		assert.Nil(t, times)
	})

	t.Run("malformed rule string errors", func(t *testing.T) {
		_, err := e.Expand(base, "FREQ=NOTAREALFREQ", until)
		assert.Error(t, err)
	})
}
