package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campuspulse/timecore/internal/common"
	"github.com/campuspulse/timecore/zoneinfo"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	// Register custom validation for zerolog level names
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		level := fl.Field().String()
		if level == "" {
			return true // Optional field
		}
		_, err := zerolog.ParseLevel(strings.ToLower(level))
		return err == nil
	})

	// Register custom validation for log output formats
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "console", "json", "text":
			return true
		}
		return false
	})

	// Register custom validation for zone identifiers
	_ = validate.RegisterValidation("zoneid", func(fl validator.FieldLevel) bool {
		id := fl.Field().String()
		if id == "" {
			return true // Optional field
		}
		_, err := zoneinfo.ParseZone(id)
		return err == nil
	})

	// Register custom validation for timestamp layouts: the layout must
	// reproduce a reference time through a format/parse round trip
	_ = validate.RegisterValidation("timelayout", func(fl validator.FieldLevel) bool {
		layout := fl.Field().String()
		if layout == "" {
			return true // Optional field
		}
		ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
		parsed, err := time.Parse(layout, ref.Format(layout))
		if err != nil {
			return false
		}
		return parsed.Year() == ref.Year() && parsed.Hour() == ref.Hour() && parsed.Minute() == ref.Minute()
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors, ok := err.(validator.ValidationErrors); ok {
			validationErrors = errors
		} else {
			return common.WrapError(err, "config validation failed")
		}

		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fieldErr.Namespace()+" failed on '"+fieldErr.Tag()+"'")
		}
		return common.NewConfigurationError("", "", strings.Join(messages, "; "))
	}

	return nil
}
