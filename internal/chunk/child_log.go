package chunk

import (
	"io"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/memfill/internal/logger"
)

// Environment variables carrying the controller's log settings to chunk
// processes. They match the controller's own MEMFILL_LOG_* settings.
const (
	LogLevelEnv  = "MEMFILL_LOG_LEVEL"
	LogFormatEnv = "MEMFILL_LOG_FORMAT"
)

type childLogConfig struct {
	Level  string `env:"MEMFILL_LOG_LEVEL"`
	Format string `env:"MEMFILL_LOG_FORMAT"`
}

// logEnv returns the environment entries forwarding level and format.
// Empty values are not forwarded.
func logEnv(level, format string) []string {
	var out []string
	if level != "" {
		out = append(out, LogLevelEnv+"="+level)
	}
	if format != "" {
		out = append(out, LogFormatEnv+"="+format)
	}
	return out
}

// newChildLogger builds the chunk logger from the forwarded settings. An
// unreadable level falls back to info.
func newChildLogger(out io.Writer) *logger.Logger {
	var cfg childLogConfig
	parseErr := env.Parse(&cfg)

	level, levelErr := logger.ParseLevel(cfg.Level)
	if levelErr != nil {
		level = zerolog.InfoLevel
	}

	log := logger.NewLogger("memfill-chunk",
		logger.WithOutput(out),
		logger.WithLevel(level),
		logger.WithFormat(cfg.Format),
	).WithField("pid", strconv.Itoa(os.Getpid()))

	if parseErr != nil {
		log.Warn().Err(parseErr).Msg("error reading log settings")
	}
	if levelErr != nil {
		log.Warn().Err(levelErr).Str("level", cfg.Level).Msg("unknown log level, using info")
	}

	return log
}
