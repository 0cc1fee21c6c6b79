package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// LoggerType represents different logger outputs
type LoggerType string

const (
	// ConsoleLogger writes logs to stdout only
	ConsoleLogger LoggerType = "console"
	// FileLogger writes logs to file only
	FileLogger LoggerType = "file"
	// HybridLogger writes logs to both file and stdout
	HybridLogger LoggerType = "hybrid"
)

// AppLogger wraps logrus with the service defaults
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// Config holds logger configuration
type Config struct {
	Level    string     `json:"level" mapstructure:"level"`
	FilePath string     `json:"file_path" mapstructure:"file_path"`
	Type     LoggerType `json:"type" mapstructure:"type"`
	Service  string     `json:"service" mapstructure:"service"`
}

// NewAppLogger creates a new application logger
func NewAppLogger(config Config) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	logger.SetOutput(os.Stdout)

	appLogger := &AppLogger{
		Logger:  logger,
		service: config.Service,
	}

	if config.Type == ConsoleLogger || config.FilePath == "" {
		return appLogger, nil
	}

	if err := appLogger.setupFileOutput(config.FilePath, config.Type == HybridLogger); err != nil {
		return nil, fmt.Errorf("failed to setup file output: %w", err)
	}

	return appLogger, nil
}

// InitAppLoggerFromConfig initializes the logger from the application config
func InitAppLoggerFromConfig(configs *models.Config) (*AppLogger, error) {
	return NewAppLogger(Config{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Type:     LoggerType(configs.Logger.Type),
		Service:  configs.App.Name,
	})
}

func (al *AppLogger) setupFileOutput(filePath string, withStdout bool) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	if withStdout {
		al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		al.Logger.SetOutput(file)
	}

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

// entry builds a log entry carrying the service name and the given fields
func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	data := make(logrus.Fields, len(fields)+1)
	if al.service != "" {
		data["service"] = al.service
	}
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return al.Logger.WithFields(data)
}

// Debug logs a debug message
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.entry(fields).Debug(msg)
}

// Info logs an info message
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.entry(fields).Info(msg)
}

// Warn logs a warning message
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.entry(fields).Warn(msg)
}

// Error logs an error message
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.entry(fields).Error(msg)
}

// Fatal logs a fatal message and exits
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.entry(fields).Fatal(msg)
}

// LogHTTPRequest logs an HTTP request with a level derived from the status code
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.entry([]Field{
		Int("status", statusCode),
		String("latency", latency.String()),
		{Key: "latency_ms", Value: latency.Milliseconds()},
		String("client_ip", clientIP),
		String("method", method),
		String("path", path),
		String("request_id", requestID),
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	switch {
	case statusCode >= 500:
		entry.Error("Server error")
	case statusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request processed")
	}
}
