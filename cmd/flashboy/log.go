package main

import (
	"fmt"

	"github.com/pterm/pterm"
)

func init() {
	pterm.DefaultLogger.ShowTime = true
	pterm.DefaultLogger.TimeFormat = "02 Jan 15:04:05"
	pterm.DefaultLogger.MaxWidth = 1000
}

func logDebug(format string, args ...interface{}) {
	pterm.DefaultLogger.Debug(fmt.Sprintf(format, args...))
}

func logInfo(format string, args ...interface{}) {
	pterm.DefaultLogger.Info(fmt.Sprintf(format, args...))
}

func logError(format string, args ...interface{}) {
	pterm.DefaultLogger.Error(fmt.Sprintf(format, args...))
}

// enableDebug configures the logger to show debug messages.
func enableDebug() {
	pterm.DefaultLogger.Level = pterm.LogLevelDebug
}

// enableQuiet drops everything below errors.
func enableQuiet() {
	pterm.DefaultLogger.Level = pterm.LogLevelError
}

// ptermLogger adapts pterm's default logger to programmer.Logger.
type ptermLogger struct{}

func (ptermLogger) Debug(msg string, keysAndValues ...interface{}) {
	pterm.DefaultLogger.Debug(msg, pterm.DefaultLogger.Args(keysAndValues...))
}

func (ptermLogger) Info(msg string, keysAndValues ...interface{}) {
	pterm.DefaultLogger.Info(msg, pterm.DefaultLogger.Args(keysAndValues...))
}

func (ptermLogger) Error(msg string, keysAndValues ...interface{}) {
	pterm.DefaultLogger.Error(msg, pterm.DefaultLogger.Args(keysAndValues...))
}
