package app

import (
	"time"

	"github.com/hyperifyio/goheuristics/internal/fetch"
)

// DefaultUserAgent identifies the analyzer to the pages it fetches.
const DefaultUserAgent = "goheuristics/1.0 (+https://github.com/hyperifyio/goheuristics)"

// DefaultExportPath prefills the save prompt.
const DefaultExportPath = "heuristic-report.pdf"

// Config holds runtime configuration for the application.
type Config struct {
	// Page retrieval
	Timeout         time.Duration
	UserAgent       string
	RedirectMaxHops int

	// Window
	InitialURL string
	ExportPath string

	// Logging
	LogFile string
	Verbose bool
}

// DefaultConfig returns the configuration used when nothing else is set.
func DefaultConfig() Config {
	return Config{
		Timeout:         fetch.DefaultTimeout,
		UserAgent:       DefaultUserAgent,
		RedirectMaxHops: 5,
		ExportPath:      DefaultExportPath,
	}
}
