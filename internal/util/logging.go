// Package util provides common utilities including logging helpers,
// file system operations, and small conversion functions.
package util

import (
	"log"
	"os"
	"strings"
)

// verbose gates debug output the way the dashboard gates dev logging:
// silent unless MORNING_DEBUG is set. Errors are always logged.
var verbose = strings.TrimSpace(os.Getenv("MORNING_DEBUG")) != ""

// Debugf logs a formatted message only when debug logging is enabled.
func Debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
