package civiltime

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/timecore/zoneinfo"
)

func TestClassify_Unambiguous(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	status, ok := Classify(newReading(2021, time.June, 1, 12, 0), newYork)

	require.True(t, ok)
	assert.Equal(t, Unambiguous, status)
}

func TestClassify_Gap(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	status, ok := Classify(newReading(2021, time.March, 14, 2, 30), newYork)

	require.True(t, ok)
	assert.Equal(t, Gap, status)
}

func TestClassify_Overlap(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	status, ok := Classify(newReading(2021, time.November, 7, 1, 30), newYork)

	require.True(t, ok)
	assert.Equal(t, Overlap, status)
}

func TestClassify_AbsentArguments(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	_, ok := Classify(civil.DateTime{}, newYork)
	assert.False(t, ok)

	_, ok = Classify(newReading(2021, time.June, 1, 12, 0), zoneinfo.Zone{})
	assert.False(t, ok)
}

func TestClassify_FixedOffsetZonesNeverAmbiguous(t *testing.T) {
	zone := mustZone(t, "UTC+05:30")

	for hour := 0; hour < 24; hour++ {
		status, ok := Classify(newReading(2021, time.March, 14, hour, 30), zone)
		require.True(t, ok)
		assert.Equal(t, Unambiguous, status)
	}
}

// A reading is unambiguous exactly when converting it to an instant and back
// reproduces it.
func TestClassify_CharacterizesRoundTrip(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	// Half-hour steps across both 2021 transitions plus ordinary days.
	var readings []civil.DateTime
	for _, day := range []civil.Date{
		{Year: 2021, Month: time.March, Day: 14},
		{Year: 2021, Month: time.November, Day: 7},
		{Year: 2021, Month: time.July, Day: 20},
	} {
		for halfHours := 0; halfHours < 12; halfHours++ {
			readings = append(readings, civil.DateTime{
				Date: day,
				Time: civil.Time{Hour: halfHours / 2, Minute: (halfHours % 2) * 30},
			})
		}
	}

	for _, reading := range readings {
		status, ok := Classify(reading, newYork)
		require.True(t, ok)

		roundTrip := ToLocal(ToInstant(reading, newYork), newYork)
		if status == Unambiguous {
			assert.Equal(t, reading, roundTrip, "reading %v", reading)
		} else if status == Gap {
			assert.NotEqual(t, reading, roundTrip, "gap reading %v must not survive the round trip", reading)
		} else {
			// Overlap readings survive the round trip but have a second
			// interpretation.
			assert.Equal(t, reading, roundTrip, "reading %v", reading)
		}
	}
}

func TestAmbiguityStatus_String(t *testing.T) {
	assert.Equal(t, "UNAMBIGUOUS", Unambiguous.String())
	assert.Equal(t, "GAP", Gap.String())
	assert.Equal(t, "OVERLAP", Overlap.String())
}
