package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hyperifyio/goheuristics/internal/app"
)

// errNoTerminal is returned when stdin or stdout is not an interactive terminal.
var errNoTerminal = errors.New("goheuristics needs an interactive terminal")

// NewRootCmd creates the goheuristics command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goheuristics [url]",
		Short: "Check a web page against Nielsen's usability heuristics",
		Long: `goheuristics fetches a single web page and runs ten content checks against it,
one per Nielsen usability heuristic. Findings are shown in an interactive
terminal window and can be exported to PDF (or Markdown with a .md path).

Keys: enter analyze, ctrl+e export, ctrl+l clear, ctrl+c quit.`,
		Version:       app.VersionString(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "Path to a YAML or JSON config file")
	f.String("env-file", ".env", "Path to a dotenv file loaded before reading the environment")
	f.String("log-file", "", "Write logs to this file while the window is open")
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Duration("timeout", app.DefaultConfig().Timeout, "Page retrieval timeout")
	f.String("user-agent", app.DefaultUserAgent, "User-Agent header for page retrieval")
	f.String("export-path", app.DefaultExportPath, "Path suggested in the export prompt")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("run failed")
		return err
	}
	return nil
}

// resolveConfig builds the configuration from defaults, config file, dotenv
// and environment, explicit flags and the optional URL argument, in
// increasing order of precedence.
func resolveConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	f := cmd.Flags()
	cfg := app.DefaultConfig()

	if path, _ := f.GetString("config"); strings.TrimSpace(path) != "" {
		fc, err := app.LoadConfigFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	envFile, _ := f.GetString("env-file")
	if err := app.LoadEnvFiles(envFile); err != nil {
		return cfg, fmt.Errorf("load env file: %w", err)
	}
	app.ApplyEnvToConfig(&cfg)

	if f.Changed("timeout") {
		cfg.Timeout, _ = f.GetDuration("timeout")
	}
	if f.Changed("user-agent") {
		cfg.UserAgent, _ = f.GetString("user-agent")
	}
	if f.Changed("export-path") {
		cfg.ExportPath, _ = f.GetString("export-path")
	}
	if f.Changed("log-file") {
		cfg.LogFile, _ = f.GetString("log-file")
	}
	if v, _ := f.GetBool("verbose"); v {
		cfg.Verbose = true
	}
	if len(args) == 1 {
		cfg.InitialURL = strings.TrimSpace(args[0])
	}

	if err := app.ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
