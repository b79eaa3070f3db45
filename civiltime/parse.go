package civiltime

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const (
	// layoutCombinedDateHour joins the session form's date field with an
	// hour-of-day, e.g. "Tue, 01 Apr, 2014 8.00".
	layoutCombinedDateHour = "Mon, 02 Jan, 2006 15.04"
	// layoutSessionsFormJoint joins the form's separate date, hour and
	// minute fields, e.g. "Tue, 01 Apr, 2014 23 59".
	layoutSessionsFormJoint = "Mon, 02 Jan, 2006 15 4"

	// DefaultCanonicalInstantLayout is the zoned timestamp layout used for
	// internally stored instants unless the host configures another.
	DefaultCanonicalInstantLayout = "2006-01-02 3:04 PM -0700"
)

var canonicalInstantLayout = DefaultCanonicalInstantLayout

// SetCanonicalInstantLayout wires the configured canonical timestamp layout.
// Startup wiring only; call once before any concurrent use.
func SetCanonicalInstantLayout(layout string) {
	if layout != "" {
		canonicalInstantLayout = layout
	}
}

// ParseLocal parses a wall-clock reading from s according to layout. Absent
// arguments or malformed input yield the absent reading; ordinary bad user
// input never panics or returns an error.
func ParseLocal(s, layout string) civil.DateTime {
	if s == "" || layout == "" {
		return civil.DateTime{}
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return civil.DateTime{}
	}
	return civil.DateTimeOf(t)
}

// CombineDateTime parses a session-form date string together with an
// hour-of-day string (0-24) into a reading. Hour 24 means end of day and is
// converted to 23:59 on the same date; any other hour combines with minute 0.
// Example date: "Tue, 01 Apr, 2014".
func CombineDateTime(inputDate, inputTimeHours string) civil.DateTime {
	if inputDate == "" || inputTimeHours == "" {
		return civil.DateTime{}
	}
	var joined string
	if inputTimeHours == "24" {
		joined = inputDate + " 23.59"
	} else {
		joined = inputDate + " " + inputTimeHours + ".00"
	}
	return ParseLocal(joined, layoutCombinedDateHour)
}

// ParseSessionsForm parses the session form's separate date, hour and minute
// strings jointly into a reading.
// Example: date "Tue, 01 Apr, 2014", hour "23", min "59".
func ParseSessionsForm(date, hour, min string) civil.DateTime {
	if date == "" || hour == "" || min == "" {
		return civil.DateTime{}
	}
	return ParseLocal(date+" "+hour+" "+min, layoutSessionsFormJoint)
}

// ParseInstant parses a zoned timestamp in the canonical layout into an
// instant. The input originates from trusted, previously validated internal
// data, so a malformed string is a contract violation and panics instead of
// degrading to an absent result.
func ParseInstant(s string) time.Time {
	t, err := time.Parse(canonicalInstantLayout, s)
	if err != nil {
		panic(fmt.Sprintf("civiltime: stored timestamp %q does not match canonical layout %q: %v",
			s, canonicalInstantLayout, err))
	}
	return t
}
