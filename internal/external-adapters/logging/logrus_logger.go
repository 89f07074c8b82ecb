// Package logging provides a logrus-backed implementation of the domain Logger.
package logging

import (
	"strings"

	"github.com/ochairo/ideagen/internal/domain/interfaces"
	"github.com/sirupsen/logrus"
)

// Logger adapts logrus to the domain logging interface
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a configured logrus-backed logger. Invalid levels fall
// back to info; format "json" selects the JSON formatter, anything else the
// text formatter.
func NewLogger(level, format string) *Logger {
	log := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return &Logger{log: log}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.log.WithFields(convertFields(fields)).Debug(msg)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.log.WithFields(convertFields(fields)).Info(msg)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.log.WithFields(convertFields(fields)).Warn(msg)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.log.WithFields(convertFields(fields)).Error(msg)
}

func convertFields(fields []interfaces.Field) logrus.Fields {
	converted := make(logrus.Fields, len(fields))
	for _, f := range fields {
		converted[f.Key] = f.Value
	}
	return converted
}
