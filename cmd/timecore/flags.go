package main

import "flag"

// cliFlags holds the consolidated command-line arguments.
type cliFlags struct {
	configFile string
	zoneID     string
	date       string
	hour       string
	min        string
	instant    string
	layout     string

	classify  bool
	toInstant bool
	toLocal   bool
	format    bool
	zones     bool
}

// parseFlags parses the command line, consolidating alias flags.
func parseFlags() cliFlags {
	configFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	zoneID := flag.String("zone", "", "Zone identifier, e.g. Asia/Singapore or UTC+08:00 (overrides the configured default)")
	zoneIDAlias := flag.String("z", "", "Alias for -zone")

	date := flag.String("date", "", "Wall-clock date in session form format, e.g. 'Tue, 01 Apr, 2014'")
	hour := flag.String("hour", "", "Hour of day, 0-24 (24 means end of day, 23:59)")
	min := flag.String("min", "", "Minute of hour, 0-59 (default 0)")
	instant := flag.String("instant", "", "Instant in the canonical zoned timestamp format")
	layout := flag.String("layout", "sessions", "Named display layout: date, form, 12h, sessions, disambiguation, home, courses, log, iso")

	classify := flag.Bool("classify", false, "Classify the DST ambiguity of the wall-clock reading in the zone")
	toInstant := flag.Bool("to-instant", false, "Resolve the wall-clock reading in the zone to a UTC instant")
	toLocal := flag.Bool("to-local", false, "Convert the instant to a wall-clock reading in the zone")
	format := flag.Bool("format", false, "Format the reading or instant with the named layout")
	zones := flag.Bool("zones", false, "List the zone catalog with major cities")

	flag.Parse()

	// Consolidate alias flags
	if *configFile == "" && *configFileAlias != "" {
		*configFile = *configFileAlias
	}
	if *zoneID == "" && *zoneIDAlias != "" {
		*zoneID = *zoneIDAlias
	}

	return cliFlags{
		configFile: *configFile,
		zoneID:     *zoneID,
		date:       *date,
		hour:       *hour,
		min:        *min,
		instant:    *instant,
		layout:     *layout,
		classify:   *classify,
		toInstant:  *toInstant,
		toLocal:    *toLocal,
		format:     *format,
		zones:      *zones,
	}
}
