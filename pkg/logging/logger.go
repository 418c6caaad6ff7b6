/*
File: logger.go
Description: Structured logging for netglass. Wraps logrus with text, JSON, and
custom formats, rotating file output via lumberjack, and helpers for the events
the query construction engine emits: catalog loads, per-request construction,
and resolution failures.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelFatal   LogLevel = "fatal"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON   LogFormat = "json"
	LogFormatText   LogFormat = "text"
	LogFormatCustom LogFormat = "custom"
)

// LoggerConfig holds the configuration for the logger
type LoggerConfig struct {
	Level      LogLevel  `json:"level"`
	Format     LogFormat `json:"format"`
	OutputDir  string    `json:"output_dir"`
	MaxSizeMB  int       `json:"max_size_mb"`
	MaxBackups int       `json:"max_backups"`
	MaxAgeDays int       `json:"max_age_days"`
	Compress   bool      `json:"compress"`
	Timestamp  bool      `json:"timestamp"`
	Caller     bool      `json:"caller"`
	Colors     bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *LoggerConfig) Validate() error {
	if c.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size_mb must be positive")
	}
	if c.MaxBackups < 0 {
		return fmt.Errorf("max_backups must not be negative")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText, LogFormatCustom:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelFatal:
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// Logger provides structured logging for the construction engine
type Logger struct {
	config    *LoggerConfig
	logger    *logrus.Logger
	rotator   *lumberjack.Logger
	startTime time.Time
}

// NewLogger creates a new logger instance
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = &LoggerConfig{
			Level:      LogLevelInfo,
			Format:     LogFormatText,
			OutputDir:  "./logs",
			MaxSizeMB:  100,
			MaxBackups: 10,
			MaxAgeDays: 30,
			Timestamp:  true,
			Caller:     false,
			Colors:     true,
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}

	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return l, nil
}

// setup configures the logger with the given configuration
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	if err := l.setFormatter(); err != nil {
		return err
	}

	return l.setupOutput()
}

// setFormatter configures the log formatter
func (l *Logger) setFormatter() error {
	switch l.config.Format {
	case LogFormatJSON:
		l.logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			CallerPrettyfier: func(f *runtime.Frame) (string, string) {
				filename := filepath.Base(f.File)
				return "", fmt.Sprintf("%s:%d", filename, f.Line)
			},
		})

	case LogFormatText:
		l.logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   l.config.Timestamp,
			TimestampFormat: time.RFC3339,
			ForceColors:     l.config.Colors,
			DisableColors:   !l.config.Colors,
		})

	case LogFormatCustom:
		l.logger.SetFormatter(&CustomFormatter{
			Timestamp: l.config.Timestamp,
			Caller:    l.config.Caller,
			Colors:    l.config.Colors,
		})

	default:
		return fmt.Errorf("unsupported log format: %s", l.config.Format)
	}

	return nil
}

// setupOutput wires console output plus a size-rotated log file when an
// output directory is configured.
func (l *Logger) setupOutput() error {
	if l.config.OutputDir == "" {
		l.logger.SetOutput(os.Stdout)
		return nil
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	l.rotator = &lumberjack.Logger{
		Filename:   filepath.Join(l.config.OutputDir, "netglass.log"),
		MaxSize:    l.config.MaxSizeMB,
		MaxBackups: l.config.MaxBackups,
		MaxAge:     l.config.MaxAgeDays,
		Compress:   l.config.Compress,
	}
	l.logger.SetOutput(io.MultiWriter(os.Stdout, l.rotator))

	l.logger.WithFields(logrus.Fields{
		"start_time": l.startTime.Format(time.RFC3339),
		"log_file":   l.rotator.Filename,
		"level":      l.config.Level,
		"format":     l.config.Format,
	}).Info("netglass logging initialized")

	return nil
}

// Engine-specific logging methods

// LogCatalogLoad logs a successful configuration load
func (l *Logger) LogCatalogLoad(path string, devices int, platforms int) {
	l.logger.WithFields(logrus.Fields{
		"path":      path,
		"devices":   devices,
		"platforms": platforms,
	}).Info("Device catalog loaded")
}

// LogConstruction logs one completed query construction
func (l *Logger) LogConstruction(requestID string, device string, queryType string, transport string, query []string) {
	l.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"device":     device,
		"query_type": queryType,
		"transport":  transport,
		"query":      query,
	}).Debug("Query constructed")
}

// LogResolutionFailure logs a failed construction with its typed cause
func (l *Logger) LogResolutionFailure(requestID string, device string, queryType string, err error) {
	l.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"device":     device,
		"query_type": queryType,
	}).WithError(err).Warning("Query construction failed")
}

// Close flushes and closes the rotated log file
func (l *Logger) Close() error {
	if l.rotator != nil {
		return l.rotator.Close()
	}
	return nil
}

// GetLogger returns the underlying logrus logger
func (l *Logger) GetLogger() *logrus.Logger {
	return l.logger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Info(msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Warning(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(fields).Error(msg)
}
