package civiltime

import "time"

// Special instants stored in place of real times. Their face value must not
// be used without proper processing: callers check IsSpecialTime and
// short-circuit before any zone-aware conversion or formatting. Membership
// is exact value equality, never a range.
var (
	// TimeRepresentsFollowOpening means the time follows the session's
	// opening time.
	TimeRepresentsFollowOpening = time.Date(1970, time.December, 31, 0, 0, 0, 0, time.UTC)
	// TimeRepresentsFollowVisible means the time follows the session's
	// visibility time.
	TimeRepresentsFollowVisible = time.Date(1970, time.June, 22, 0, 0, 0, 0, time.UTC)
	// TimeRepresentsLater stands for an indefinite point in the future.
	TimeRepresentsLater = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	// TimeRepresentsNever means the time never applies.
	TimeRepresentsNever = time.Date(1970, time.November, 27, 0, 0, 0, 0, time.UTC)
	// TimeRepresentsNow resolves to the current moment at evaluation time.
	TimeRepresentsNow = time.Date(1967, time.September, 27, 0, 0, 0, 0, time.UTC)
)

// IsSpecialTime reports whether the given instant is being used as a special
// representation. An absent instant is not a special time.
func IsSpecialTime(instant time.Time) bool {
	if instant.IsZero() {
		return false
	}
	return instant.Equal(TimeRepresentsFollowOpening) ||
		instant.Equal(TimeRepresentsFollowVisible) ||
		instant.Equal(TimeRepresentsLater) ||
		instant.Equal(TimeRepresentsNever) ||
		instant.Equal(TimeRepresentsNow)
}
