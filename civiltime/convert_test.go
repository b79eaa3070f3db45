package civiltime

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstant_Unambiguous(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	instant := ToInstant(newReading(2021, time.June, 1, 12, 0), newYork)

	assert.True(t, instant.Equal(time.Date(2021, time.June, 1, 16, 0, 0, 0, time.UTC)))
}

func TestToInstant_GapPushesForwardPastTransition(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	// 02:30 does not exist; interpreting it under the pre-transition offset
	// (EST) lands at 03:30 EDT.
	instant := ToInstant(newReading(2021, time.March, 14, 2, 30), newYork)

	assert.True(t, instant.Equal(time.Date(2021, time.March, 14, 7, 30, 0, 0, time.UTC)))
	assert.Equal(t, newReading(2021, time.March, 14, 3, 30), ToLocal(instant, newYork))
}

func TestToInstant_OverlapResolvesToEarlierInstant(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	// 01:30 occurs at 05:30Z (EDT) and 06:30Z (EST); the earlier wins.
	instant := ToInstant(newReading(2021, time.November, 7, 1, 30), newYork)

	assert.True(t, instant.Equal(time.Date(2021, time.November, 7, 5, 30, 0, 0, time.UTC)))
}

func TestToInstant_HalfHourGap(t *testing.T) {
	lordHowe := mustZone(t, "Australia/Lord_Howe")

	// 2021-10-03 02:00 jumped to 02:30; 02:15 resolves to 02:45 local.
	instant := ToInstant(newReading(2021, time.October, 3, 2, 15), lordHowe)

	assert.Equal(t, newReading(2021, time.October, 3, 2, 45), ToLocal(instant, lordHowe))
}

func TestToInstant_AbsentReading(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	assert.True(t, ToInstant(civil.DateTime{}, newYork).IsZero())
}

func TestToLocal(t *testing.T) {
	singapore := mustZone(t, "Asia/Singapore")

	instant := time.Date(2014, time.April, 1, 15, 59, 0, 0, time.UTC)

	assert.Equal(t, newReading(2014, time.April, 1, 23, 59), ToLocal(instant, singapore))
	assert.Equal(t, civil.DateTime{}, ToLocal(time.Time{}, singapore))
}

func TestRoundTrip_InstantSurvivesWhenUnambiguous(t *testing.T) {
	berlin := mustZone(t, "Europe/Berlin")

	instants := []time.Time{
		time.Date(2021, time.January, 15, 8, 30, 0, 0, time.UTC),
		time.Date(2021, time.July, 15, 8, 30, 0, 0, time.UTC),
		time.Date(2021, time.March, 28, 0, 59, 0, 0, time.UTC), // just before the spring transition
	}
	for _, instant := range instants {
		reading := ToLocal(instant, berlin)
		status, ok := Classify(reading, berlin)
		require.True(t, ok)
		if status == Unambiguous {
			assert.True(t, ToInstant(reading, berlin).Equal(instant), "instant %v", instant)
		}
	}
}

func TestLegacyOffsetToZone(t *testing.T) {
	assert.Equal(t, "UTC+05:30", LegacyOffsetToZone(5.5).ID())
	assert.Equal(t, "UTC-04:00", LegacyOffsetToZone(-4).ID())
	assert.Equal(t, "UTC", LegacyOffsetToZone(0).ID())
}

func TestLegacyZoneToOffset(t *testing.T) {
	assert.InDelta(t, 5.5, LegacyZoneToOffset(LegacyOffsetToZone(5.5)), 1e-9)
	assert.InDelta(t, -9.5, LegacyZoneToOffset(LegacyOffsetToZone(-9.5)), 1e-9)
}

func TestLegacyLocalToUTC(t *testing.T) {
	// 2014-04-01 08:00 stored as wall clock under UTC+08:00 is midnight UTC.
	local := time.Date(2014, time.April, 1, 8, 0, 0, 0, time.UTC)

	got := LegacyLocalToUTC(local, 8)

	assert.True(t, got.Equal(time.Date(2014, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLegacyLocalToUTC_SpecialTimesAreOffsetInvariant(t *testing.T) {
	specials := []time.Time{
		TimeRepresentsFollowOpening,
		TimeRepresentsFollowVisible,
		TimeRepresentsLater,
		TimeRepresentsNever,
		TimeRepresentsNow,
	}
	for _, special := range specials {
		for _, offset := range []float64{-12, -4.5, 0, 5.5, 14} {
			assert.True(t, LegacyLocalToUTC(special, offset).Equal(special),
				"special %v offset %v", special, offset)
		}
	}
}

func TestInstantDaysOffsetFromNow(t *testing.T) {
	before := time.Now()
	got := InstantDaysOffsetFromNow(2)
	after := time.Now()

	assert.False(t, got.Before(before.Add(48*time.Hour)))
	assert.False(t, got.After(after.Add(48*time.Hour)))
}
