// Package zoneinfo resolves time zone identifiers and answers questions about
// the UTC offsets a zone prescribes for a given instant or wall-clock reading.
// Zone rule data comes from the rule database embedded in the binary, so
// results do not depend on the host system's zoneinfo installation.
package zoneinfo

import (
	"strconv"
	"strings"
	"time"

	// Embed the IANA rule database so zone resolution works identically on
	// every host, including ones without a system zoneinfo directory.
	_ "time/tzdata"

	"github.com/campuspulse/timecore/internal/common"
)

// Zone identifies a time zone. It is an immutable value; two zones are the
// same zone iff their canonical IDs are equal. The zero Zone is the absent
// value.
type Zone struct {
	id  string
	loc *time.Location
}

// UTC is the Coordinated Universal Time zone.
var UTC = Zone{id: "UTC", loc: time.UTC}

// ID returns the canonical identifier, e.g. "Asia/Singapore" or "UTC+05:30".
func (z Zone) ID() string {
	return z.id
}

func (z Zone) String() string {
	return z.id
}

// IsZero reports whether z is the absent zone.
func (z Zone) IsZero() bool {
	return z.id == ""
}

// Equal reports whether z and other name the same zone.
func (z Zone) Equal(other Zone) bool {
	return z.id == other.id
}

// Location returns the resolved *time.Location. The absent zone resolves to
// UTC; callers that must distinguish absence check IsZero first.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// FixedZone returns the zone pinned to a single UTC offset, with the
// canonical "UTC±hh:mm" identifier.
func FixedZone(offset Offset) Zone {
	if offset == 0 {
		return UTC
	}
	id := "UTC" + offset.String()
	return Zone{id: id, loc: time.FixedZone(id, int(offset))}
}

// ParseZone resolves a zone identifier. It accepts geopolitical names such as
// "Asia/Singapore", plain "UTC" or "Z", and fixed-offset forms such as
// "UTC+05:30", "UTC+8" or "-03:30". Fixed-offset identifiers are normalized
// to the canonical "UTC±hh:mm" form, so equal offsets yield equal zones.
func ParseZone(id string) (Zone, error) {
	if id == "" {
		return Zone{}, common.NewValidationError("zone", id, "zone identifier is empty")
	}
	if id == "UTC" || id == "Z" {
		return UTC, nil
	}
	if offset, ok := parseFixedID(id); ok {
		return FixedZone(offset), nil
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, common.WrapErrorf(common.ErrZoneNotFound, "resolving zone %q", id)
	}
	return Zone{id: id, loc: loc}, nil
}

// parseFixedID parses "UTC±hh:mm", "UTC±h" and bare "±hh:mm" identifiers.
func parseFixedID(id string) (Offset, bool) {
	s := strings.TrimPrefix(id, "UTC")
	if s == "" {
		return 0, true
	}
	if s[0] != '+' && s[0] != '-' {
		return 0, false
	}
	negative := s[0] == '-'

	hourPart, minutePart, hasMinutes := strings.Cut(s[1:], ":")
	hours, err := strconv.Atoi(hourPart)
	if err != nil || hourPart == "" || hours < 0 || hours > 18 {
		return 0, false
	}
	minutes := 0
	if hasMinutes {
		minutes, err = strconv.Atoi(minutePart)
		if err != nil || len(minutePart) != 2 || minutes < 0 || minutes > 59 {
			return 0, false
		}
	}

	offset := Offset(hours*3600 + minutes*60)
	if negative {
		offset = -offset
	}
	return offset, true
}
