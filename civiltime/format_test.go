package civiltime

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/05/2012", FormatDate(newReading(2012, time.May, 5, 14, 4)))
	assert.Equal(t, "", FormatDate(civil.DateTime{}))
}

func TestFormatDateForSessionsForm(t *testing.T) {
	assert.Equal(t, "Sat, 05 May, 2012", FormatDateForSessionsForm(newReading(2012, time.May, 5, 0, 0)))
}

func TestFormatTime12H(t *testing.T) {
	assert.Equal(t, "Sat, 05 May 2012, 02:04 PM", FormatTime12H(newReading(2012, time.May, 5, 14, 4)))
	assert.Equal(t, "Sat, 05 May 2012, 09:15 AM", FormatTime12H(newReading(2012, time.May, 5, 9, 15)))
}

func TestFormatTime12H_NoonSubstitution(t *testing.T) {
	assert.Equal(t, "Sat, 05 May 2012, 12:00 NOON", FormatTime12H(newReading(2012, time.May, 5, 12, 0)))

	// One minute off in either direction renders normally.
	assert.Equal(t, "Sat, 05 May 2012, 12:01 PM", FormatTime12H(newReading(2012, time.May, 5, 12, 1)))
	assert.Equal(t, "Sat, 05 May 2012, 11:59 AM", FormatTime12H(newReading(2012, time.May, 5, 11, 59)))

	// Midnight is 12:00 AM, not NOON.
	assert.Equal(t, "Sat, 05 May 2012, 12:00 AM", FormatTime12H(newReading(2012, time.May, 5, 0, 0)))
}

func TestFormatInstant_NoonUsesZoneLocalClock(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	noonEDT := time.Date(2021, time.June, 1, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, "Tue, 01 Jun 2021, 12:00 NOON EDT", FormatDateTimeForSessions(noonEDT, newYork))
}

func TestFormatDateTimeForSessions(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	instant := time.Date(2021, time.June, 1, 18, 4, 0, 0, time.UTC)
	assert.Equal(t, "Tue, 01 Jun 2021, 02:04 PM EDT", FormatDateTimeForSessions(instant, newYork))

	winter := time.Date(2021, time.January, 5, 18, 4, 0, 0, time.UTC)
	assert.Equal(t, "Tue, 05 Jan 2021, 01:04 PM EST", FormatDateTimeForSessions(winter, newYork))
}

func TestFormatDateTimeForDisambiguation(t *testing.T) {
	newYork := mustZone(t, "America/New_York")

	instant := time.Date(2021, time.June, 1, 18, 4, 0, 0, time.UTC)
	assert.Equal(t, "Tue, 01 Jun 2021, 02:04 PM EDT (UTC-04:00)", FormatDateTimeForDisambiguation(instant, newYork))

	halfHour := mustZone(t, "UTC+05:30")
	assert.Equal(t, "Tue, 01 Jun 2021, 11:34 PM UTC+05:30 (UTC+05:30)", FormatDateTimeForDisambiguation(instant, halfHour))
}

func TestFormatInstructorHomePage(t *testing.T) {
	assert.Equal(t, "5 May 11:59 PM", FormatInstructorHomePage(newReading(2017, time.May, 5, 23, 59)))
}

func TestFormatInstructorCoursesPage(t *testing.T) {
	singapore := mustZone(t, "Asia/Singapore")

	instant := time.Date(2017, time.May, 5, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, "5 May 2017", FormatInstructorCoursesPage(instant, singapore))
}

func TestFormatActivityLog(t *testing.T) {
	instant := time.Date(2021, time.June, 1, 18, 4, 5, 123_000_000, time.UTC)

	assert.Equal(t, "01/06/2021 18:04:05.123", FormatActivityLog(instant, mustZone(t, "UTC")))
}

func TestFormatISO8601UTC(t *testing.T) {
	assert.Equal(t, "2011-12-03T10:15:30Z", FormatISO8601UTC(time.Date(2011, time.December, 3, 10, 15, 30, 0, time.UTC)))
	assert.Equal(t, "", FormatISO8601UTC(time.Time{}))

	// Non-UTC instants are rendered on the UTC timeline.
	singapore := mustZone(t, "Asia/Singapore")
	local := time.Date(2011, time.December, 3, 18, 15, 30, 0, singapore.Location())
	assert.Equal(t, "2011-12-03T10:15:30Z", FormatISO8601UTC(local))
}

func TestFormatInstant_AbsentArguments(t *testing.T) {
	newYork := mustZone(t, "America/New_York")
	instant := time.Date(2021, time.June, 1, 18, 4, 0, 0, time.UTC)

	assert.Equal(t, "", FormatInstant(time.Time{}, newYork, LayoutSessionsTime))
	assert.Equal(t, "", FormatInstant(instant, newYork, ""))
}

func TestAdjustAndFormatDateForSessionsForm(t *testing.T) {
	// 23:45 snaps to 23:59 of the same day before formatting.
	assert.Equal(t, "Sat, 05 May, 2012", AdjustAndFormatDateForSessionsForm(newReading(2012, time.May, 5, 23, 45)))

	// 00:10 snaps back to 23:59 of the previous day.
	assert.Equal(t, "Fri, 04 May, 2012", AdjustAndFormatDateForSessionsForm(newReading(2012, time.May, 5, 0, 10)))
}
