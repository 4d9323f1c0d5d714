// ABOUTME: Logger implementation backed by logrus with optional rotated file output
// ABOUTME: Maps the core Logger field maps onto logrus structured fields

package logrus

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	// Level is one of debug, info, warn, error (default info)
	Level string

	// Format is "json" or "text" (default text)
	Format string

	// File, when set, sends output to a rotated log file instead of stdout
	File string

	// MaxSizeMB is the rotation size of the log file in megabytes
	MaxSizeMB int

	// MaxBackups is the number of rotated files kept
	MaxBackups int

	// MaxAgeDays is how long rotated files are kept
	MaxAgeDays int
}

// Logger implements the Logger interface using logrus
type Logger struct {
	entry *logrus.Logger
}

// NewLogger creates a logrus-backed logger from options
func NewLogger(opts Options) *Logger {
	l := logrus.New()
	l.SetOutput(output(opts))

	if strings.EqualFold(opts.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return &Logger{entry: l}
}

// NewWithLogrus wraps an existing logrus logger
func NewWithLogrus(l *logrus.Logger) *Logger {
	return &Logger{entry: l}
}

func output(opts Options) io.Writer {
	if opts.File == "" {
		return os.Stdout
	}
	rotated := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
	if rotated.MaxSize <= 0 {
		rotated.MaxSize = 100
	}
	if rotated.MaxBackups <= 0 {
		rotated.MaxBackups = 3
	}
	if rotated.MaxAge <= 0 {
		rotated.MaxAge = 28
	}
	return rotated
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.withFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.withFields(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.withFields(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *Logger) withFields(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.entry)
	}
	return l.entry.WithFields(logrus.Fields(fields))
}
