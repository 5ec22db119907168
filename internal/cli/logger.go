package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

// configureLogger sets the level once flags are known: --verbose shows
// detection details, --quiet leaves only warnings and errors.
func configureLogger(logger *logrus.Logger, cfg *Config) {
	switch {
	case cfg.Verbose:
		logger.SetLevel(logrus.DebugLevel)
	case cfg.Quiet:
		logger.SetLevel(logrus.WarnLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}
