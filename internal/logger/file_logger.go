package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger represents a file logger for risk engine activity
type Logger struct {
	name    string
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	logDir  string
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARN"
	LogLevelError   LogLevel = "ERROR"
	LogLevelRisk    LogLevel = "RISK"
	LogLevelParam   LogLevel = "PARAM"
)

// NewLogger creates a new file logger for the named engine instance
func NewLogger(name string) (*Logger, error) {
	// Create log directory if it doesn't exist
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Create log filename with timestamp
	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("risk_%s_%s.log", name, timestamp)
	logPath := filepath.Join(logDir, filename)

	// Open or create log file
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Create logger with no prefix (we add our own formatting)
	logger := log.New(file, "", 0)

	l := &Logger{
		name:    name,
		logFile: file,
		logger:  logger,
		logDir:  logDir,
	}

	// Write session start header
	l.writeSessionHeader()

	return l, nil
}

// writeSessionHeader writes a session start header to the log
func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🛡️ RISK ENGINE SESSION STARTED
================================================================================
Engine: %s
Started: %s
Log File: risk_%s_%s.log
================================================================================
`, l.name, time.Now().Format("2006-01-02 15:04:05"),
		l.name, time.Now().Format("2006-01-02"))

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	logEntry := fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)

	l.logger.Println(logEntry)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// Risk logs a risk event (breach detections, regime shifts)
func (l *Logger) Risk(format string, args ...interface{}) {
	l.Log(LogLevelRisk, format, args...)
}

// Param logs a parameter change
func (l *Logger) Param(format string, args ...interface{}) {
	l.Log(LogLevelParam, format, args...)
}

// LogError logs an error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// LogBreach logs a limit breach with its measured value against the limit
func (l *Logger) LogBreach(breachType string, current, limit float64) {
	l.Risk("%s breach: %.2f%% against limit %.2f%%", breachType, current, limit)
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		l.logger.Printf("[%s] [%s] Risk engine session ended", timestamp, LogLevelInfo)
		return l.logFile.Close()
	}
	return nil
}
