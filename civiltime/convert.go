package civiltime

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/campuspulse/timecore/zoneinfo"
)

// ToInstant resolves reading in zone to an absolute instant. An absent
// reading yields the zero instant; the zone must not be absent (caller
// contract).
//
// Ambiguous readings resolve without caller input: a Gap reading is pushed
// forward past the transition by interpreting it under the pre-transition
// offset, and an Overlap reading resolves to the earlier of its two
// instants. Callers needing explicit control run Classify first. The rule is
// implemented here rather than delegated to time.Date, whose gap behavior
// resolves to the instant before the transition instead.
func ToInstant(reading civil.DateTime, zone zoneinfo.Zone) time.Time {
	if isAbsent(reading) {
		return time.Time{}
	}

	pseudo := time.Date(reading.Date.Year, reading.Date.Month, reading.Date.Day,
		reading.Time.Hour, reading.Time.Minute, reading.Time.Second, reading.Time.Nanosecond, time.UTC)

	offsets := ruleProvider.ValidOffsets(reading, zone)
	if len(offsets) == 0 {
		// Gap: clocks advanced, so the smaller bracketing offset is the one
		// in force before the transition.
		before := ruleProvider.OffsetAt(pseudo.Add(-24*time.Hour), zone)
		if after := ruleProvider.OffsetAt(pseudo.Add(24*time.Hour), zone); after < before {
			before = after
		}
		return pseudo.Add(-before.Duration())
	}
	// Offsets are ordered earliest instant first.
	return pseudo.Add(-offsets[0].Duration())
}

// ToLocal returns the wall-clock reading of instant in zone. An absent
// instant yields the absent reading.
func ToLocal(instant time.Time, zone zoneinfo.Zone) civil.DateTime {
	if instant.IsZero() {
		return civil.DateTime{}
	}
	return civil.DateTimeOf(instant.In(zone.Location()))
}

// InstantDaysOffsetFromNow returns the instant the given number of days from
// now.
func InstantDaysOffsetFromNow(offsetInDays int64) time.Time {
	return time.Now().Add(time.Duration(offsetInDays) * 24 * time.Hour)
}

// LegacyOffsetToZone constructs a fixed-offset zone from a fractional-hour
// offset, e.g. 5.5 -> "UTC+05:30".
//
// Deprecated: transition shim for data stored with numeric offsets. New code
// uses zone identifiers and ParseZone.
func LegacyOffsetToZone(offsetHours float64) zoneinfo.Zone {
	return zoneinfo.FixedZone(zoneinfo.Offset(offsetHours * 3600))
}

// LegacyZoneToOffset is the inverse of LegacyOffsetToZone, reporting the
// zone's fractional-hour offset at the current moment.
//
// Deprecated: transition shim; see LegacyOffsetToZone.
func LegacyZoneToOffset(zone zoneinfo.Zone) float64 {
	return float64(ruleProvider.OffsetAt(time.Now(), zone)) / 3600
}

// LegacyLocalToUTC converts an instant whose UTC wall-clock fields were
// stored as local time under offsetHours into the true instant. Special
// instants are offset-invariant and returned unchanged.
//
// Deprecated: required only for correct interpretation of legacy stored
// session times; do not use for new data.
func LegacyLocalToUTC(local time.Time, offsetHours float64) time.Time {
	if IsSpecialTime(local) {
		return local
	}
	return ToInstant(ToLocal(local, zoneinfo.UTC), LegacyOffsetToZone(offsetHours))
}
