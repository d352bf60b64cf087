package internal

import (
	"log"
	"os"
)

// LogLevel controls logging verbosity.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelInfo
	LogLevelDebug
)

// Logger writes component-tagged log lines so the pipeline stages and
// the ops sidecar share one logging idiom. Verbosity comes from the
// LOG_LEVEL environment variable; per-row noise (source read timings,
// row counts) sits at Debug so a production load logs one line per
// stage.
type Logger struct {
	level LogLevel
	tag   string
}

// NewLogger creates a logger for one component tag. LOG_LEVEL accepts
// ERROR, INFO or DEBUG; anything else means INFO.
func NewLogger(tag string) *Logger {
	return &Logger{level: levelFromEnv(), tag: tag}
}

func levelFromEnv() LogLevel {
	switch os.Getenv("LOG_LEVEL") {
	case "ERROR":
		return LogLevelError
	case "DEBUG":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// Error logs failures that surface to the user or abort a request.
func (l *Logger) Error(format string, args ...interface{}) {
	l.printf(LogLevelError, format, args...)
}

// Info logs one line per significant event (a source loaded, a server
// started).
func (l *Logger) Info(format string, args ...interface{}) {
	l.printf(LogLevelInfo, format, args...)
}

// Debug logs per-file timings and row counts.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.printf(LogLevelDebug, format, args...)
}

func (l *Logger) printf(level LogLevel, format string, args ...interface{}) {
	if l.level >= level {
		log.Printf("["+l.tag+"] "+format, args...)
	}
}
