// Command timecore is a diagnostic tool for the civil-time core: it
// classifies DST ambiguity, converts between instants and wall-clock
// readings, formats values with the session display layouts, and dumps the
// zone catalog.
package main

import (
	"fmt"
	stdlog "log"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/campuspulse/timecore/civiltime"
	"github.com/campuspulse/timecore/internal/config"
	"github.com/campuspulse/timecore/internal/logger"
	"github.com/campuspulse/timecore/zoneinfo"
)

func main() {
	flags := parseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.configFile, zerolog.Nop())
	if err != nil {
		stdlog.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.configFile, err)
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		stdlog.Fatalf("[FATAL] Invalid configuration: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		stdlog.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	// One-time startup wiring, before anything touches the time core.
	civiltime.SetCanonicalInstantLayout(gCfg.TimeConfig.CanonicalInstantLayout)
	if err := zoneinfo.Bootstrap(zLogger); err != nil {
		zLogger.Warn().Err(err).Msg("Continuing with degraded zone data")
	}

	if err := run(flags, gCfg, zLogger); err != nil {
		zLogger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func run(flags cliFlags, gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	if flags.zones {
		for _, zone := range zoneinfo.ZoneValues() {
			fmt.Printf("%-10s %s\n", zone.ID(), zoneinfo.CitiesForZone(zone))
		}
		return nil
	}

	zoneID := flags.zoneID
	if zoneID == "" {
		zoneID = gCfg.TimeConfig.DefaultZoneID
	}
	zone, err := zoneinfo.ParseZone(zoneID)
	if err != nil {
		return err
	}

	reading, instant := resolveInputs(flags, zone)

	switch {
	case flags.classify:
		status, ok := civiltime.Classify(reading, zone)
		if !ok {
			return fmt.Errorf("classification needs -date (and optionally -hour/-min)")
		}
		fmt.Println(status)
		if status != civiltime.Unambiguous {
			offsets := zoneinfo.StandardProvider{}.ValidOffsets(reading, zone)
			zLogger.Info().Str("zone", zone.ID()).Interface("valid_offsets", offsets).Msg("Ambiguous reading")
		}
	case flags.toInstant:
		t := civiltime.ToInstant(reading, zone)
		if t.IsZero() {
			return fmt.Errorf("conversion needs -date (and optionally -hour/-min)")
		}
		fmt.Println(civiltime.FormatISO8601UTC(t))
	case flags.toLocal:
		if instant.IsZero() {
			return fmt.Errorf("conversion needs -instant")
		}
		fmt.Println(civiltime.ToLocal(instant, zone))
	case flags.format:
		return formatValue(flags, reading, instant, zone)
	default:
		return fmt.Errorf("nothing to do: pass one of -classify, -to-instant, -to-local, -format, -zones")
	}
	return nil
}

// resolveInputs builds the wall-clock reading and instant the command
// operates on. Either may come back absent; each subcommand checks what it
// needs.
func resolveInputs(flags cliFlags, zone zoneinfo.Zone) (civil.DateTime, time.Time) {
	var reading civil.DateTime
	switch {
	case flags.date != "" && flags.min != "":
		reading = civiltime.ParseSessionsForm(flags.date, flags.hour, flags.min)
	case flags.date != "" && flags.hour != "":
		reading = civiltime.CombineDateTime(flags.date, flags.hour)
	case flags.date != "":
		reading = civiltime.ParseLocal(flags.date, civiltime.LayoutSessionsFormDate)
	}

	var instant time.Time
	if flags.instant != "" {
		instant = civiltime.ParseInstant(flags.instant)
	} else if !(reading == civil.DateTime{}) {
		instant = civiltime.ToInstant(reading, zone)
	}
	return reading, instant
}

func formatValue(flags cliFlags, reading civil.DateTime, instant time.Time, zone zoneinfo.Zone) error {
	var out string
	switch flags.layout {
	case "date":
		out = civiltime.FormatDate(reading)
	case "form":
		out = civiltime.AdjustAndFormatDateForSessionsForm(reading)
	case "12h":
		out = civiltime.FormatTime12H(reading)
	case "sessions":
		out = civiltime.FormatDateTimeForSessions(instant, zone)
	case "disambiguation":
		out = civiltime.FormatDateTimeForDisambiguation(instant, zone)
	case "home":
		out = civiltime.FormatInstructorHomePage(reading)
	case "courses":
		out = civiltime.FormatInstructorCoursesPage(instant, zone)
	case "log":
		out = civiltime.FormatActivityLog(instant, zone)
	case "iso":
		out = civiltime.FormatISO8601UTC(instant)
	default:
		return fmt.Errorf("unknown layout %q", flags.layout)
	}
	if out == "" {
		return fmt.Errorf("no value to format: pass -date/-hour/-min or -instant")
	}
	fmt.Println(out)
	return nil
}
