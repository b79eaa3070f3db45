package civiltime

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/require"

	"github.com/campuspulse/timecore/zoneinfo"
)

func newReading(year int, month time.Month, day, hour, min int) civil.DateTime {
	return civil.DateTime{
		Date: civil.Date{Year: year, Month: month, Day: day},
		Time: civil.Time{Hour: hour, Minute: min},
	}
}

func mustZone(t *testing.T, id string) zoneinfo.Zone {
	t.Helper()
	zone, err := zoneinfo.ParseZone(id)
	require.NoError(t, err)
	return zone
}
