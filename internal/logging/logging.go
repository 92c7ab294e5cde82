// Package logging provides a small leveled logger for browserauto.
// Output goes to stderr so command results on stdout stay machine-readable.
package logging

import (
	"log"
	"os"
)

var (
	quiet  = false
	debug  = os.Getenv("BROWSERAUTO_DEBUG") != ""
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// Disable silences Info/Warn/Debug output. Errors are always printed.
func Disable() {
	quiet = true
}

// Enable turns logging back on.
func Enable() {
	quiet = false
}

// Info logs an informational message.
func Info(v ...any) {
	if !quiet {
		logger.Println(v...)
	}
}

// Infof logs a formatted informational message.
func Infof(format string, v ...any) {
	if !quiet {
		logger.Printf(format, v...)
	}
}

// Warn logs a warning.
func Warn(v ...any) {
	if !quiet {
		logger.Println(v...)
	}
}

// Warnf logs a formatted warning.
func Warnf(format string, v ...any) {
	if !quiet {
		logger.Printf(format, v...)
	}
}

// Error logs an error message. Not affected by Disable.
func Error(v ...any) {
	logger.Println(v...)
}

// Errorf logs a formatted error message. Not affected by Disable.
func Errorf(format string, v ...any) {
	logger.Printf(format, v...)
}

// Debug logs a debug message when BROWSERAUTO_DEBUG is set.
func Debug(v ...any) {
	if debug && !quiet {
		logger.Println(v...)
	}
}

// Debugf logs a formatted debug message when BROWSERAUTO_DEBUG is set.
func Debugf(format string, v ...any) {
	if debug && !quiet {
		logger.Printf(format, v...)
	}
}
