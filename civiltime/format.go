package civiltime

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/campuspulse/timecore/zoneinfo"
)

// Display layouts for the session surfaces. Downstream consumers depend on
// the exact output strings.
const (
	// LayoutDate renders a date as dd/MM/yyyy, e.g. "05/05/2012".
	LayoutDate = "02/01/2006"
	// LayoutSessionsFormDate matches the session form's date field,
	// e.g. "Sat, 05 May, 2012".
	LayoutSessionsFormDate = "Mon, 02 Jan, 2006"
	// LayoutTime12H is the 12-hour clock display, e.g. "Sat, 05 May 2012, 02:04 PM".
	LayoutTime12H = "Mon, 02 Jan 2006, 03:04 PM"
	// LayoutSessionsTime appends the zone abbreviation to LayoutTime12H.
	LayoutSessionsTime = "Mon, 02 Jan 2006, 03:04 PM MST"
	// LayoutDisambiguation additionally spells out the numeric UTC offset,
	// for surfaces that warn about ambiguous local times.
	LayoutDisambiguation = "Mon, 02 Jan 2006, 03:04 PM MST (UTC-07:00)"
	// LayoutInstructorHome is the compact form on the instructor home page,
	// e.g. "5 May 11:59 PM".
	LayoutInstructorHome = "2 Jan 3:04 PM"
	// LayoutCoursesPage is the compact date on the instructor courses page,
	// e.g. "5 May 2017".
	LayoutCoursesPage = "2 Jan 2006"
	// LayoutActivityLog is the admin activity log timestamp with
	// milliseconds.
	LayoutActivityLog = "02/01/2006 15:04:05.000"
)

const noonLiteral = "NOON"

// noonLayout substitutes the literal NOON for the meridiem token when the
// wall clock shows exactly 12:00. The substitution is a textual rewrite of
// the layout, applied before the formatting engine runs.
func noonLayout(layout string, hour, minute int) string {
	if hour == 12 && minute == 0 {
		return strings.ReplaceAll(layout, "PM", noonLiteral)
	}
	return layout
}

// FormatLocal renders a wall-clock reading with the given layout. An absent
// reading or empty layout yields "": formatting is best-effort for display.
// 12:00 PM is especially formatted as NOON if a meridiem token is present.
func FormatLocal(reading civil.DateTime, layout string) string {
	if isAbsent(reading) || layout == "" {
		return ""
	}
	t := time.Date(reading.Date.Year, reading.Date.Month, reading.Date.Day,
		reading.Time.Hour, reading.Time.Minute, reading.Time.Second, reading.Time.Nanosecond, time.UTC)
	return t.Format(noonLayout(layout, reading.Time.Hour, reading.Time.Minute))
}

// FormatInstant renders an instant at a zone with the given layout. An
// absent instant, absent zone or empty layout yields "". 12:00 PM is
// especially formatted as NOON if a meridiem token is present.
func FormatInstant(instant time.Time, zone zoneinfo.Zone, layout string) string {
	if instant.IsZero() || zone.IsZero() || layout == "" {
		return ""
	}
	local := instant.In(zone.Location())
	return local.Format(noonLayout(layout, local.Hour(), local.Minute()))
}

// FormatDate formats a reading's date as dd/MM/yyyy.
func FormatDate(reading civil.DateTime) string {
	return FormatLocal(reading, LayoutDate)
}

// FormatDateForSessionsForm formats a reading's date for the session form.
// Example: "Sat, 05 May, 2012".
func FormatDateForSessionsForm(reading civil.DateTime) string {
	return FormatLocal(reading, LayoutSessionsFormDate)
}

// AdjustAndFormatDateForSessionsForm performs AdjustForSessionsForm followed
// by FormatDateForSessionsForm.
func AdjustAndFormatDateForSessionsForm(reading civil.DateTime) string {
	return FormatDateForSessionsForm(AdjustForSessionsForm(reading))
}

// FormatTime12H formats a reading on the 12-hour clock.
// Example: "Sat, 05 May 2012, 02:04 PM".
func FormatTime12H(reading civil.DateTime) string {
	return FormatLocal(reading, LayoutTime12H)
}

// FormatDateTimeForSessions formats an instant at the session's zone,
// including the zone abbreviation.
func FormatDateTimeForSessions(instant time.Time, zone zoneinfo.Zone) string {
	return FormatInstant(instant, zone, LayoutSessionsTime)
}

// FormatDateTimeForDisambiguation formats an instant with both the zone
// abbreviation and the numeric UTC offset.
func FormatDateTimeForDisambiguation(instant time.Time, zone zoneinfo.Zone) string {
	return FormatInstant(instant, zone, LayoutDisambiguation)
}

// FormatInstructorHomePage formats a reading for the instructor home page.
// Example: "5 May 11:59 PM".
func FormatInstructorHomePage(reading civil.DateTime) string {
	return FormatLocal(reading, LayoutInstructorHome)
}

// FormatInstructorCoursesPage formats an instant for the instructor courses
// page. Example: "5 May 2017".
func FormatInstructorCoursesPage(instant time.Time, zone zoneinfo.Zone) string {
	return FormatInstant(instant, zone, LayoutCoursesPage)
}

// FormatActivityLog formats an instant for the admin activity log.
func FormatActivityLog(instant time.Time, zone zoneinfo.Zone) string {
	return FormatInstant(instant, zone, LayoutActivityLog)
}

// FormatISO8601UTC formats an instant as an ISO-8601 UTC string. An absent
// instant yields "".
func FormatISO8601UTC(instant time.Time) string {
	if instant.IsZero() {
		return ""
	}
	return instant.UTC().Format(time.RFC3339Nano)
}
