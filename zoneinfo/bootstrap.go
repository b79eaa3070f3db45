package zoneinfo

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuspulse/timecore/internal/common"
)

var (
	bootstrapOnce sync.Once
	catalog       []Zone
	citiesByID    map[string]string
)

// Bootstrap builds the process-lifetime zone catalog and verifies that the
// embedded rule database is usable. The hosting application must call it once
// during startup, before any concurrent use of ZoneValues or CitiesForZone;
// further calls are no-ops.
//
// Individual catalog entries that fail to resolve are logged and skipped so
// the process can continue in a degraded mode. The returned error reports
// only an unusable rule database.
func Bootstrap(logger zerolog.Logger) error {
	var dbErr error
	bootstrapOnce.Do(func() {
		citiesByID = make(map[string]string, len(cityTable))
		for _, entry := range cityTable {
			zone, err := ParseZone(entry.zoneID)
			if err != nil {
				logger.Error().Err(err).Str("zone", entry.zoneID).Msg("Skipping unresolvable catalog zone")
				continue
			}
			catalog = append(catalog, zone)
			citiesByID[zone.ID()] = entry.cities
		}

		// Geopolitical zones need the rule database; fixed offsets do not.
		probe, err := time.LoadLocation("Asia/Singapore")
		if err != nil {
			dbErr = common.WrapError(err, "zone rule database unavailable")
			logger.Error().Err(err).Msg("Zone rule database unavailable, only fixed-offset zones will resolve")
			return
		}

		logger.Info().
			Str("version", StandardProvider{}.RuleVersion(Zone{id: probe.String(), loc: probe})).
			Int("catalog_zones", len(catalog)).
			Msg("Registered zone rules")
	})
	return dbErr
}
