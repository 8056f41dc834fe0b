package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, ClockTime(9*60+30), c)
	assert.Equal(t, "09:30", c.String())

	_, err = ParseClock("25:00")
	assert.Error(t, err)

	_, err = ParseClock("9:30am")
	assert.Error(t, err)
}

func TestTimeWindow_Overlaps(t *testing.T) {
	morning := TimeWindow{Start: 9 * 60, End: 12 * 60}
	afternoon := TimeWindow{Start: 12 * 60, End: 17 * 60}
	midday := TimeWindow{Start: 11 * 60, End: 13 * 60}

	// Shared endpoints do not overlap
	assert.False(t, morning.Overlaps(afternoon))
	assert.False(t, afternoon.Overlaps(morning))

	assert.True(t, morning.Overlaps(midday))
	assert.True(t, midday.Overlaps(afternoon))
	assert.True(t, morning.Overlaps(morning))
}

func TestTimeWindow_Contains(t *testing.T) {
	day := TimeWindow{Start: 9 * 60, End: 17 * 60}

	assert.True(t, day.Contains(TimeWindow{Start: 9 * 60, End: 17 * 60}))
	assert.True(t, day.Contains(TimeWindow{Start: 10 * 60, End: 12 * 60}))
	assert.False(t, day.Contains(TimeWindow{Start: 8 * 60, End: 12 * 60}))
	assert.False(t, day.Contains(TimeWindow{Start: 16 * 60, End: 18 * 60}))
}

func TestTimeWindow_DurationHours(t *testing.T) {
	assert.InDelta(t, 8.0, TimeWindow{Start: 9 * 60, End: 17 * 60}.DurationHours(), 0.001)
	assert.InDelta(t, 2.5, TimeWindow{Start: 9 * 60, End: 11*60 + 30}.DurationHours(), 0.001)
}

func TestDateTime(t *testing.T) {
	instant, err := DateTime("2026-03-02", ClockTime(17*60))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), instant)

	_, err = DateTime("02/03/2026", 0)
	assert.Error(t, err)
}
