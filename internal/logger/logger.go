package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	// DEBUG level for detailed debugging information
	DEBUG LogLevel = iota
	// INFO level for general operational information
	INFO
	// WARN level for warning messages
	WARN
	// ERROR level for error messages
	ERROR
	// FATAL level for fatal errors that require immediate attention
	FATAL
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

// ParseLevel maps a configuration string to a LogLevel. Unknown values
// default to INFO.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

// Logger is a leveled logger scoped to a named component. Instances are
// constructed explicitly and passed to the components that need them.
type Logger struct {
	level     LogLevel
	logger    *log.Logger
	mu        sync.Mutex
	component string
}

// New creates a logger writing to stdout
func New(level LogLevel, component string) *Logger {
	return NewWithOutput(level, component, os.Stdout)
}

// NewWithOutput creates a logger writing to the given sink. Tests use this to
// capture output.
func NewWithOutput(level LogLevel, component string, out io.Writer) *Logger {
	return &Logger{
		level:     level,
		logger:    log.New(out, "", log.LstdFlags|log.Lmicroseconds),
		component: component,
	}
}

// WithComponent creates a new logger with the specified component name,
// sharing the underlying sink and level.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:     l.level,
		logger:    l.logger,
		component: component,
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// log performs the actual logging
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s][%s] %s", levelNames[level], l.component, msg)

	if level == FATAL {
		os.Exit(1)
	}
}

// Debug logs debug level messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

// Info logs info level messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

// Warn logs warning level messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

// Error logs error level messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// Fatal logs fatal level messages and exits
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}
