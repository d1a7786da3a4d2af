package common

import (
	"fmt"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"log"
	"os"
	"strings"
)

// Names of the loggers used in this module
const (
	LoggerClient    = "client"
	LoggerTransport = "transport"
	LoggerServer    = "server"
)

// --------------------------------------------------------------------------
// Custom Logger (implements dragonboats logger.ILogger)
// --------------------------------------------------------------------------

// levelLabels are the level columns of a log line
var levelLabels = map[logger.LogLevel]string{
	logger.DEBUG:   "DEBUG",
	logger.INFO:    "INFO",
	logger.WARNING: "WARN",
	logger.ERROR:   "ERROR",
}

// bouyomiLogger writes one line per message: time, level, logger name, message
type bouyomiLogger struct {
	name  string
	level logger.LogLevel
	out   *log.Logger
}

func newLogger(name string, w io.Writer) *bouyomiLogger {
	return &bouyomiLogger{
		name:  name,
		level: logger.INFO,
		out:   log.New(w, "", log.Ldate|log.Ltime),
	}
}

func (l *bouyomiLogger) SetLevel(level logger.LogLevel) {
	l.level = level
}

func (l *bouyomiLogger) Debugf(format string, args ...interface{}) {
	l.logf(logger.DEBUG, format, args...)
}

func (l *bouyomiLogger) Infof(format string, args ...interface{}) {
	l.logf(logger.INFO, format, args...)
}

func (l *bouyomiLogger) Warningf(format string, args ...interface{}) {
	l.logf(logger.WARNING, format, args...)
}

func (l *bouyomiLogger) Errorf(format string, args ...interface{}) {
	l.logf(logger.ERROR, format, args...)
}

// Panicf logs the message regardless of the level and panics with it
func (l *bouyomiLogger) Panicf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.out.Printf("%-5s | %-10s | %s", "PANIC", l.name, message)
	panic(message)
}

func (l *bouyomiLogger) logf(level logger.LogLevel, format string, args ...interface{}) {
	if l.level < level {
		return
	}
	l.out.Printf("%-5s | %-10s | %s", levelLabels[level], l.name, fmt.Sprintf(format, args...))
}

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// CreateLogger is a logger.Factory writing to stdout
func CreateLogger(pkgName string) logger.ILogger {
	return newLogger(pkgName, os.Stdout)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// ParseLogLevel converts a string level to logger.LogLevel
func ParseLogLevel(level string) (logger.LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logger.DEBUG, nil
	case "info":
		return logger.INFO, nil
	case "warning", "warn":
		return logger.WARNING, nil
	case "error":
		return logger.ERROR, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers installs the custom format and sets the level of all loggers of this module
func InitLoggers(level string) error {
	lvl, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	logger.SetLoggerFactory(CreateLogger)

	for _, name := range []string{LoggerClient, LoggerTransport, LoggerServer} {
		logger.GetLogger(name).SetLevel(lvl)
	}
	return nil
}
