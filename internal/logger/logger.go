// Package logger builds zerolog loggers from the application's LogConfig,
// writing to the console, a size-rotated file, or both.
package logger

import (
	"io"
	stdlog "log" // Standard Go log package, aliased to avoid conflict with zerolog field
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/campuspulse/timecore/internal/common"
	"github.com/campuspulse/timecore/internal/config"
)

// New creates a zerolog logger from cfg.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewLoggerBuilder().WithConfig(cfg).Build()
}

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	level      zerolog.Level
	format     string
	filePath   string
	maxSizeMB  int
	maxBackups int
	console    io.Writer
}

// NewLoggerBuilder creates a new logger builder with defaults
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		level:      zerolog.InfoLevel,
		format:     config.DefaultLogFormat,
		maxSizeMB:  config.DefaultMaxLogSizeMB,
		maxBackups: config.DefaultMaxLogBackups,
		console:    os.Stderr,
	}
}

// WithConfig sets the logger configuration
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	if cfg.LogLevel != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
			lb.level = level
		}
	}
	if cfg.LogFormat != "" {
		lb.format = cfg.LogFormat
	}
	lb.filePath = cfg.LogFile
	if cfg.MaxLogSizeMB > 0 {
		lb.maxSizeMB = cfg.MaxLogSizeMB
	}
	if cfg.MaxLogBackups > 0 {
		lb.maxBackups = cfg.MaxLogBackups
	}
	return lb
}

// WithConsoleOutput redirects console output, primarily for tests
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.console = w
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (zerolog.Logger, error) {
	writers := lb.createWriters()
	if len(writers) == 0 {
		return zerolog.Nop(), common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	instance := zerolog.New(multiWriter).
		Level(lb.level).
		With().
		Timestamp().
		Logger()

	stdlog.SetOutput(instance)
	stdlog.SetFlags(0)

	return instance, nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() []io.Writer {
	var writers []io.Writer

	if lb.console != nil {
		writers = append(writers, lb.consoleWriter())
	}
	if lb.filePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   lb.filePath,
			MaxSize:    lb.maxSizeMB,
			MaxBackups: lb.maxBackups,
			Compress:   true,
		})
	}

	return writers
}

// consoleWriter formats console output according to the configured format
func (lb *LoggerBuilder) consoleWriter() io.Writer {
	switch lb.format {
	case "json":
		return lb.console
	case "text":
		return zerolog.ConsoleWriter{Out: lb.console, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: lb.console, TimeFormat: time.RFC3339}
	}
}
