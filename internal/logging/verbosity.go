package logging

import (
	log "github.com/sirupsen/logrus"
)

// DefaultLevel is the level used when no verbosity flag is given
const DefaultLevel = log.WarnLevel

// SetVerbosity sets the log level: every `-v` flag goes one level past DefaultLevel, up to trace.
func SetVerbosity(v []bool) {
	verbosity := DefaultLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
