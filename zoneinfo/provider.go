package zoneinfo

import (
	"runtime"
	"sort"
	"time"

	"cloud.google.com/go/civil"
)

// RuleProvider answers offset questions for a zone. Implementations must be
// safe for concurrent use; the standard implementation is stateless.
//
// RuleVersion identifies the rule data in use and is intended for startup
// diagnostics only, never for decision logic.
type RuleProvider interface {
	ValidOffsets(reading civil.DateTime, zone Zone) []Offset
	OffsetAt(instant time.Time, zone Zone) Offset
	RuleVersion(zone Zone) string
}

// StandardProvider resolves offsets from the embedded rule database via the
// zone's *time.Location.
type StandardProvider struct{}

// probeWindow brackets a reading when collecting candidate offsets. No zone
// transitions by more than a day's worth of offset, so the offsets in force a
// day before and after the reading cover every possible interpretation.
const probeWindow = 24 * time.Hour

// ValidOffsets returns the UTC offsets under which reading is a real
// wall-clock time in zone: one offset for an unambiguous reading, none inside
// a "spring forward" gap, two inside a "fall back" overlap. Offsets are
// ordered by the instant they produce, earliest first. An absent reading or
// zone yields nil.
func (p StandardProvider) ValidOffsets(reading civil.DateTime, zone Zone) []Offset {
	if reading == (civil.DateTime{}) || zone.IsZero() {
		return nil
	}

	pseudo := pseudoInstant(reading)
	candidates := make(map[Offset]struct{}, 3)
	for _, probe := range []time.Time{pseudo.Add(-probeWindow), pseudo, pseudo.Add(probeWindow)} {
		candidates[p.OffsetAt(probe, zone)] = struct{}{}
	}

	var valid []Offset
	for offset := range candidates {
		instant := pseudo.Add(-offset.Duration())
		if civil.DateTimeOf(instant.In(zone.Location())) == reading {
			valid = append(valid, offset)
		}
	}

	// A larger offset maps the reading to an earlier point on the UTC
	// timeline, so descending offset order is chronological order.
	sort.Slice(valid, func(i, j int) bool { return valid[i] > valid[j] })
	return valid
}

// OffsetAt returns the offset zone prescribes at the given absolute instant.
func (StandardProvider) OffsetAt(instant time.Time, zone Zone) Offset {
	_, secs := instant.In(zone.Location()).Zone()
	return Offset(secs)
}

// RuleVersion returns a token identifying the rule data behind zone.
func (StandardProvider) RuleVersion(zone Zone) string {
	if zone.IsZero() {
		return ""
	}
	if zone.ID() == "UTC" || isFixedID(zone.ID()) {
		return "fixed"
	}
	return "embedded-tzdata/" + runtime.Version()
}

func isFixedID(id string) bool {
	_, ok := parseFixedID(id)
	return ok
}

// pseudoInstant lays the reading's calendar fields onto the UTC timeline.
func pseudoInstant(reading civil.DateTime) time.Time {
	return time.Date(reading.Date.Year, reading.Date.Month, reading.Date.Day,
		reading.Time.Hour, reading.Time.Minute, reading.Time.Second, reading.Time.Nanosecond, time.UTC)
}
