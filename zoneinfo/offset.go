package zoneinfo

import (
	"fmt"
	"time"
)

// Offset is a UTC offset in seconds east of UTC.
type Offset int

// Duration returns the offset as a time.Duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o) * time.Second
}

// String renders the offset in ±hh:mm form, e.g. "+05:30".
func (o Offset) String() string {
	sign := "+"
	secs := int(o)
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, (secs%3600)/60)
}

// FixedLocation returns a fixed *time.Location for the offset, named in the
// canonical "UTC±hh:mm" form.
func (o Offset) FixedLocation() *time.Location {
	if o == 0 {
		return time.UTC
	}
	return time.FixedZone("UTC"+o.String(), int(o))
}
