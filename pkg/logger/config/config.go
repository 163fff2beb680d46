// Package config holds the logger's validated settings, kept separate
// from the zap wiring so the driver can construct and check a
// Configuration without importing zap itself.
package config

import "fmt"

// Log levels, numbered the way zapcore.Level does (debug is negative)
// but kept as our own type so config doesn't need to import zapcore.
const (
	DebugLevel = -1
	InfoLevel  = 0
	WarnLevel  = 1
	ErrorLevel = 2
)

// Configuration is the fully-resolved set of knobs the zap wiring
// needs to build a logger.
type Configuration struct {
	Level      int
	TimeFormat string
}

// Validate rejects a level outside the known range or an empty time
// format, so a bad env var fails fast at startup instead of inside
// the first log call.
func (c Configuration) Validate() error {
	if c.Level < DebugLevel || c.Level > ErrorLevel {
		return fmt.Errorf("logger config: level %d out of range [%d, %d]", c.Level, DebugLevel, ErrorLevel)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("logger config: time format must not be empty")
	}
	return nil
}
