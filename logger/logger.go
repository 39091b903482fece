// logger.go - Leveled logging for the server
// Wraps go-logging with a single stderr backend so every package logs the same way.

package logger

import (
	"os"

	"github.com/op/go-logging"
)

const module = "courses"

var (
	logger  = logging.MustGetLogger(module)
	leveled logging.LeveledBackend // Backend installed by InitLogger; owns the level
)

func init() { // Usable before InitLogger is called (tests, early startup)
	InitLogger(logging.INFO)
}

// InitLogger installs a stderr backend filtered at the given level.
func InitLogger(level logging.Level) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), logging.MustStringFormatter(
		`%{time:2006/01/02 15:04:05} %{level:.4s} - %{message}`,
	))
	backend := logging.AddModuleLevel(formatted)
	backend.SetLevel(level, module)
	logger.SetBackend(backend)
	leveled = backend
}

// ParseLevel converts a level name such as "DEBUG" or "warning" into a
// go-logging level, defaulting to INFO when the name is unknown.
func ParseLevel(name string) logging.Level {
	level, err := logging.LogLevel(name)
	if err != nil {
		return logging.INFO
	}
	return level
}

// IsDebug reports whether debug messages are currently emitted.
func IsDebug() bool {
	return leveled.IsEnabledFor(logging.DEBUG, module)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warning(args ...any) {
	logger.Warning(args...)
}

func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
