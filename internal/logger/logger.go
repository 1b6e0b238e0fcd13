package logger

import (
	"github.com/sirupsen/logrus"
)

// New builds a logrus logger from the configured level and format. The
// instance is handed to each component explicitly rather than living as a
// package singleton, which keeps tests free to use their own.
func New(level, format string) *logrus.Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}
