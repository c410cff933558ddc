package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goheuristics/internal/fetch"
	"github.com/hyperifyio/goheuristics/internal/heuristics"
	"github.com/hyperifyio/goheuristics/internal/ui"
)

// App wires page retrieval, analysis and the terminal window together.
type App struct {
	cfg      Config
	analyzer *heuristics.Analyzer
	logFile  io.Closer
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	client := &fetch.Client{
		HTTPClient:      newPageHTTPClient(cfg.Timeout),
		UserAgent:       cfg.UserAgent,
		Timeout:         cfg.Timeout,
		RedirectMaxHops: cfg.RedirectMaxHops,
	}
	a := &App{cfg: cfg, analyzer: heuristics.NewAnalyzer(client)}
	return a, nil
}

// Close releases the log file, if one was opened by Run.
func (a *App) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// Model returns the window model bound to this App's analyzer.
func (a *App) Model(ctx context.Context) *ui.Model {
	return ui.New(ctx, a.analyzer, ui.Options{URL: a.cfg.InitialURL, ExportPath: a.cfg.ExportPath})
}

// Run shows the window until the user quits or ctx is cancelled. While the
// window owns the terminal, logs go to the configured log file or nowhere.
func (a *App) Run(ctx context.Context) error {
	restore, err := a.redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	log.Info().Str("url", a.cfg.InitialURL).Dur("timeout", a.cfg.Timeout).Msg("window starting")
	program := tea.NewProgram(a.Model(ctx), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	log.Info().Msg("window closed")
	return nil
}

func (a *App) redirectLogs() (func(), error) {
	prev := log.Logger
	if a.cfg.LogFile == "" {
		log.Logger = zerolog.Nop()
		return func() { log.Logger = prev }, nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.logFile = f
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { log.Logger = prev }, nil
}
