package core_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/aide/pkg/core"
)

func TestParseDate(t *testing.T) {
	d, err := core.ParseDate("date", "31-12-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC), d)

	for _, short := range []string{"1-3-2025", "01-3-2025", "1-03-2025"} {
		d, err := core.ParseDate("date", short)
		require.NoError(t, err, "input %q", short)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), d)
	}

	for _, bad := range []string{"", "2024-12-31", "32-01-2024", "1-13-2024", "1-1-24"} {
		_, err := core.ParseDate("date", bad)
		assert.True(t, errors.Is(err, core.ErrValidation), "input %q", bad)
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "07-03-2025 09:05:03", core.FormatTimestamp(ts))
}
