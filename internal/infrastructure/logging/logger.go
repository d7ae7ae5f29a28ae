package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
)

// New builds a logrus logger from the logging section of the config.
// The returned closer releases the log file when output is "file".
func New(cfg config.LoggingConfig) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)
	logger.SetReportCaller(cfg.IncludeCaller)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var closer io.Closer = nopCloser{}
	switch cfg.Output {
	case "stdout":
		logger.SetOutput(os.Stdout)
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		closer = f
	default:
		logger.SetOutput(os.Stderr)
	}

	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Adapter exposes a logrus logger through the application's Logger port
type Adapter struct {
	entry *logrus.Entry
}

var _ common.Logger = (*Adapter)(nil)

func NewAdapter(logger *logrus.Logger) *Adapter {
	return &Adapter{entry: logrus.NewEntry(logger)}
}

// With returns an adapter that adds fields to every entry
func (a *Adapter) With(fields map[string]interface{}) *Adapter {
	return &Adapter{entry: a.entry.WithFields(logrus.Fields(fields))}
}

func (a *Adapter) Log(level, message string, metadata map[string]interface{}) {
	entry := a.entry
	if len(metadata) > 0 {
		entry = entry.WithFields(logrus.Fields(metadata))
	}
	entry.Log(parseLevel(level), message)
}

func parseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
