// Package log wraps charmbracelet/log behind the small format-string API the
// teacher's common/log package exposes, so callers don't have to learn a
// second logging interface. Adapted directly from common/log/log.go,
// generalized to take the level from a Config value instead of reading a
// package-global Conf singleton.
package log

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

// Init creates the package logger, prefixed with appName and set to level
// (any of charmbracelet/log's level names; unrecognized values default to
// info).
func Init(appName, level string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
}

func ensure() {
	if logger == nil {
		Init("mahjong", "info")
	}
}

func Fatal(format string, args ...any) { ensure(); logf(logger.Fatal, format, args) }
func Error(format string, args ...any) { ensure(); logf(logger.Error, format, args) }
func Warn(format string, args ...any)  { ensure(); logf(logger.Warn, format, args) }
func Info(format string, args ...any)  { ensure(); logf(logger.Info, format, args) }
func Debug(format string, args ...any) { ensure(); logf(logger.Debug, format, args) }

func logf(fn func(any, ...any), format string, args []any) {
	if len(args) == 0 {
		fn(format)
		return
	}
	fn(fmt.Sprintf(format, args...))
}
