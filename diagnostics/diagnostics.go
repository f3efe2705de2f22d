// Package diagnostics represent utiltiy methods for diagnostics messages
package diagnostics

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process wide logger
func Setup(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Fatal logs a fatal error message and exits if err is not nil
func Fatal(msg string, err error) {
	if err == nil {
		return
	}
	log.WithError(err).Fatal(msg)
}

// WarningLogger returns a handler that logs conversion warnings for file
func WarningLogger(file string) func(message string, line int) {
	entry := log.WithField("file", file)
	return func(message string, line int) {
		if line > 0 {
			entry.WithField("line", line).Warn(message)
			return
		}
		entry.Warn(message)
	}
}
