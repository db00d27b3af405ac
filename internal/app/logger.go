// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/theroadeldorado/duma-deer-processing-sub000/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and
// LOG_PRETTY. Pretty output is for local development; production stays
// JSON.
func InitializeLogger() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	pretty := os.Getenv("LOG_PRETTY") == "true"
	logger.Init(logLevel, pretty)
}
