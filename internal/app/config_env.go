package app

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Environment variables read by ApplyEnvToConfig.
const (
	EnvTimeout    = "GOHEURISTICS_TIMEOUT"
	EnvUserAgent  = "GOHEURISTICS_USER_AGENT"
	EnvURL        = "GOHEURISTICS_URL"
	EnvExportPath = "GOHEURISTICS_EXPORT_PATH"
	EnvLogFile    = "GOHEURISTICS_LOG_FILE"
)

// LoadEnvFiles loads dotenv files of KEY=VALUE pairs into the process
// environment. Variables already set in the environment are not overridden.
// Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnvToConfig overlays environment variables onto cfg. Unparseable
// values are ignored with a warning.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		} else {
			log.Warn().Str("env", EnvTimeout).Str("value", v).Msg("ignoring invalid duration")
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvUserAgent)); v != "" {
		cfg.UserAgent = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvURL)); v != "" {
		cfg.InitialURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPath)); v != "" {
		cfg.ExportPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
}
