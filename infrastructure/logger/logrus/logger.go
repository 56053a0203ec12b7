// ABOUTME: Logger implementation backed by logrus with JSON-formatted structured fields
// ABOUTME: Satisfies the core Logger interface used throughout the application

package logrus

import (
	"os"

	sirupsen "github.com/sirupsen/logrus"
)

// Logger implements the Logger interface using logrus
type Logger struct {
	log *sirupsen.Logger
}

// NewLogger creates a new logrus-backed logger writing JSON to stdout
func NewLogger() *Logger {
	log := sirupsen.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&sirupsen.JSONFormatter{})
	log.SetLevel(sirupsen.InfoLevel)
	return &Logger{log: log}
}

// NewDebugLogger creates a logger that also emits debug messages
func NewDebugLogger() *Logger {
	logger := NewLogger()
	logger.log.SetLevel(sirupsen.DebugLevel)
	return logger
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(sirupsen.Fields(fields)).Error(msg)
}
