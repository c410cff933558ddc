// Command goheuristics fetches one web page, checks it against Nielsen's ten
// usability heuristics and shows the findings in an interactive terminal
// window, from which they can be exported to PDF or Markdown.
//
// Usage:
//
//	goheuristics [url]
//
// See --help for all available options.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
