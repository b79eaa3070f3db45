package civiltime

import (
	"time"

	"cloud.google.com/go/civil"
)

// AdjustForSessionsForm returns a copy of the reading snapped to the values
// the session-editing form can represent: every hour on the hour, plus the
// end-of-day value 23:59. Readings already representable are returned
// unchanged. Others are rounded to the nearest hour (exactly half way rounds
// up), and only then is a result of exactly midnight remapped to 23:59 of
// the prior day; midnight is never a representable form value. An absent
// reading yields the absent reading.
func AdjustForSessionsForm(reading civil.DateTime) civil.DateTime {
	if isAbsent(reading) {
		return civil.DateTime{}
	}
	hour, minute := reading.Time.Hour, reading.Time.Minute
	if minute == 0 && hour != 0 || minute == 59 && hour == 23 {
		return reading
	}

	// Round to the nearest hour.
	t := time.Date(reading.Date.Year, reading.Date.Month, reading.Date.Day,
		hour, minute, reading.Time.Second, reading.Time.Nanosecond, time.UTC)
	floor := t.Truncate(time.Hour)
	ceiling := floor.Add(time.Hour)
	rounded := floor
	if ceiling.Sub(t) <= 30*time.Minute {
		rounded = ceiling
	}

	// Remap 00:00 -> 23:59.
	if rounded.Hour() == 0 {
		rounded = rounded.Add(-time.Minute)
	}
	return civil.DateTimeOf(rounded)
}
