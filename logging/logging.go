// Package logging defines shared verbosity levels for diagnostic output.
package logging

import "fmt"

const (
	// DebugLevel indicates a log message's level of criticality
	DebugLevel = iota
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ParseLogLevel translates a string representation of a log level to its
// enum value
func ParseLogLevel(level string) (int, error) {
	switch level {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return 0, fmt.Errorf("unknown log level %s", level)
	}
}
