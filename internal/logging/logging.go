// Package logging builds the logrus logger used by the commands.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/christiaansc/Codec-BoBAssistant/internal/config"
)

const timestampFormat = "2006-01-02 15:04:05"

// New configures a logger from cfg. An unknown level falls back to info, a
// log file that cannot be opened falls back to stdout.
func New(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: timestampFormat})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: timestampFormat})
	}

	var out io.Writer = os.Stdout
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	case "file":
		if cfg.FilePath != "" {
			file, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err == nil {
				out = file
			} else {
				log.WithError(err).Warn("cannot open log file, using stdout")
			}
		}
	}
	log.SetOutput(out)
	return log
}
