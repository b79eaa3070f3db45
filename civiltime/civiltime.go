// Package civiltime converts between absolute instants and zone-less
// wall-clock readings, classifies the DST ambiguity of a reading, and
// formats and parses date-time values for the session surfaces.
//
// A wall-clock reading is a civil.DateTime; an instant is a time.Time on the
// UTC timeline. Absent values are the zero values throughout: operations
// receiving an absent required argument return an absent or empty result
// rather than failing.
//
// All functions are pure and safe for concurrent use once the one-time
// startup wiring (SetRuleProvider, SetCanonicalInstantLayout,
// zoneinfo.Bootstrap) has completed.
package civiltime

import (
	"cloud.google.com/go/civil"

	"github.com/campuspulse/timecore/zoneinfo"
)

var ruleProvider zoneinfo.RuleProvider = zoneinfo.StandardProvider{}

// SetRuleProvider replaces the zone rule provider. It is startup wiring for
// hosts that supply their own rule source; call it once before any
// concurrent use. A nil provider is ignored.
func SetRuleProvider(p zoneinfo.RuleProvider) {
	if p != nil {
		ruleProvider = p
	}
}

func isAbsent(reading civil.DateTime) bool {
	return reading == civil.DateTime{}
}
