package uaetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationIsUTCPlus4(t *testing.T) {
	// Asia/Dubai has no DST, so the offset is fixed year-round.
	for _, m := range []time.Month{time.January, time.July} {
		at := time.Date(2026, m, 15, 12, 0, 0, 0, Location())
		_, offset := at.Zone()
		assert.Equal(t, 4*60*60, offset)
	}
}

func TestDateStrUsesBusinessCalendar(t *testing.T) {
	// 21:30 UTC is already the next day in Dubai.
	utc := time.Date(2026, time.March, 1, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-02", DateStr(utc))

	// 19:00 UTC is 23:00 Dubai, still the same day.
	utc = time.Date(2026, time.March, 1, 19, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", DateStr(utc))
}

func TestTodayYesterdayAreConsecutive(t *testing.T) {
	today, err := time.ParseInLocation(DateLayout, Today(), Location())
	require.NoError(t, err)
	yesterday, err := time.ParseInLocation(DateLayout, Yesterday(), Location())
	require.NoError(t, err)

	assert.Equal(t, today.AddDate(0, 0, -1), yesterday)
}

func TestMonthStart(t *testing.T) {
	start := MonthStart()
	assert.Equal(t, Today()[:8]+"01", start)
}
