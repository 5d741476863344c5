// Package logger builds the application's logrus logger from the environment.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile receives logs in interactive mode, where stdout belongs to the
// terminal UI.
const DefaultFile = "fortress.log"

// New creates a logger configured from the environment:
//   - LOG_LEVEL: logrus level name, "info" by default
//   - LOG_FORMAT: "json" for machine-readable output, anything else for text
//   - LOG_FILE: path to append to; when unset, logs go to fallback
//
// The returned close function releases the log file, if one was opened.
func New(fallback io.Writer) (*logrus.Logger, func() error, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: fallback == nil,
		})
	}

	closeFn := func() error { return nil }
	path := os.Getenv("LOG_FILE")
	if path == "" && fallback == nil {
		path = DefaultFile
	}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		log.SetOutput(f)
		closeFn = f.Close
	default:
		log.SetOutput(fallback)
	}

	return log, closeFn, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
