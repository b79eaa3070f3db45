package config

// TimeConfig defines the system-wide time parameters: the canonical layout
// for internally stored zoned timestamps and the default zone identifier.
// These are the trusted inputs the time core is wired with at startup.
type TimeConfig struct {
	CanonicalInstantLayout string `json:"canonical_instant_layout,omitempty" yaml:"canonical_instant_layout,omitempty" validate:"omitempty,timelayout"`
	DefaultZoneID          string `json:"default_zone_id,omitempty" yaml:"default_zone_id,omitempty" validate:"omitempty,zoneid"`
}

// NewDefaultTimeConfig creates default time configuration
func NewDefaultTimeConfig() TimeConfig {
	return TimeConfig{
		CanonicalInstantLayout: DefaultCanonicalInstantLayout,
		DefaultZoneID:          DefaultZoneID,
	}
}
