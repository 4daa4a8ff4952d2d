package utils

import (
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ConfigureLogger sets the global logrus formatter and level. Production logs
// are JSON; everything else gets timestamped text. Unknown levels fall back to info.
func ConfigureLogger(isProd bool, level string) {
	if isProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
