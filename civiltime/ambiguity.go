package civiltime

import (
	"cloud.google.com/go/civil"

	"github.com/campuspulse/timecore/zoneinfo"
)

// AmbiguityStatus classifies how a wall-clock reading maps onto the UTC
// timeline in a zone, as determined by the zone's DST rules.
type AmbiguityStatus int

const (
	// Unambiguous readings resolve to exactly one instant.
	Unambiguous AmbiguityStatus = iota

	// Gap readings fall inside the discontinuity when clocks spring forward
	// at the start of DST. Strictly speaking they are non-existent and need
	// readjustment to be valid.
	Gap

	// Overlap readings fall inside the period repeated when clocks fall back
	// at the end of DST. They have more than one valid interpretation.
	Overlap
)

func (s AmbiguityStatus) String() string {
	switch s {
	case Unambiguous:
		return "UNAMBIGUOUS"
	case Gap:
		return "GAP"
	case Overlap:
		return "OVERLAP"
	default:
		return "UNKNOWN"
	}
}

// Classify reports the ambiguity of reading in zone. ok is false iff either
// argument is absent. The status carries no offset: callers needing the
// concrete offsets query the rule provider separately.
func Classify(reading civil.DateTime, zone zoneinfo.Zone) (status AmbiguityStatus, ok bool) {
	if isAbsent(reading) || zone.IsZero() {
		return 0, false
	}
	switch offsets := ruleProvider.ValidOffsets(reading, zone); len(offsets) {
	case 1:
		return Unambiguous, true
	case 0:
		return Gap, true
	default:
		return Overlap, true
	}
}
