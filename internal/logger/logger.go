package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger represents the application logger
type Logger struct {
	*logrus.Logger
	config LogConfig
}

// LogConfig contains logger configuration
type LogConfig struct {
	Level       string
	Format      string // "json" or "text"
	LogToFile   bool
	LogFilePath string
}

// NewLogger creates a new logger instance
func NewLogger(config LogConfig) (*Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %s: %w", config.Level, err)
	}
	log.SetLevel(level)

	log.SetOutput(os.Stdout)

	switch strings.ToLower(config.Format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			DisableQuote:    true,
		})
	}

	if config.LogToFile && config.LogFilePath != "" {
		logDir := filepath.Dir(config.LogFilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
		}
		f, err := os.OpenFile(config.LogFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", config.LogFilePath, err)
		}
		log.SetOutput(f)
	}

	return &Logger{
		Logger: log,
		config: config,
	}, nil
}

// WithComponent returns a logger with component context
func (l *Logger) WithComponent(component string) *logrus.Entry {
	return l.WithField("component", component)
}

// WithTransaction returns a logger with transaction context
func (l *Logger) WithTransaction(signature string) *logrus.Entry {
	return l.WithField("transaction", signature)
}

// LogStartup logs application startup information
func (l *Logger) LogStartup(version, network, rpcUrl string) {
	l.WithFields(logrus.Fields{
		"event":   "startup",
		"version": version,
		"network": network,
		"rpc_url": rpcUrl,
	}).Info("client starting up")
}

// LogContribution logs a launchpad contribution attempt
func (l *Logger) LogContribution(launch string, lamports uint64, fee uint64) {
	l.WithFields(logrus.Fields{
		"event":        "contribution",
		"launch":       launch,
		"amount":       lamports,
		"platform_fee": fee,
	}).Info("contribution assembled")
}

// LogIntent logs an intent submission
func (l *Logger) LogIntent(intentType string, amount uint64, ready bool) {
	l.WithFields(logrus.Fields{
		"event":    "intent",
		"type":     intentType,
		"amount":   amount,
		"on_chain": ready,
	}).Info("intent assembled")
}

// LogValidationReject logs a client-side validation rejection
func (l *Logger) LogValidationReject(operation, reason string) {
	l.WithFields(logrus.Fields{
		"event":     "validation_reject",
		"operation": operation,
		"reason":    reason,
	}).Warn("input rejected before assembly")
}
