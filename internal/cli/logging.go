package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/log/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/hyperlath/internal/config"
)

const logPrefix = "hyperlath"

// newLogger builds the CLI logger. Logs go to stderr, or to a size-rotated
// file when cfg.File is set. The returned closer releases the file.
func newLogger(cfg config.LogConfig, stderr io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var (
		w      = stderr
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		w, closer = rotating, rotating
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          logPrefix,
		ReportTimestamp: cfg.File != "",
		Formatter:       formatterFor(cfg.Format),
	})

	return logger, closer, nil
}

func formatterFor(format string) log.Formatter {
	switch strings.ToLower(format) {
	case config.LogFormatJSON:
		return log.JSONFormatter
	case config.LogFormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
