// Package logger implements the leveled stderr logger used by struct.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels
type LogLevel int

const (
	// Log levels from least to most restrictive
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// String returns the label printed in front of each message.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "NONE"
	}
}

// Logger writes timestamped, level-prefixed lines. Diagnostics go here,
// never to the tree output.
type Logger struct {
	out       io.Writer
	useColors bool
	level     LogLevel
}

// New creates a Logger. Verbose starts it at debug level, otherwise warn:
// a tree listing should not be interleaved with chatter by default.
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelWarn
	if verbose {
		level = LevelDebug
	}
	return &Logger{out: out, useColors: useColors, level: level}
}

// SetLevel sets the level from its textual name. Unknown names leave the
// current level untouched.
func (l *Logger) SetLevel(levelStr string) {
	if level, ok := ParseLevel(levelStr); ok {
		l.level = level
	}
}

// Level reports the active level.
func (l *Logger) Level() LogLevel {
	return l.level
}

// ParseLevel converts a level name to a LogLevel.
func ParseLevel(level string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "none", "off":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(LevelDebug, color.CyanString, format, args)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(LevelInfo, color.BlueString, format, args)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(LevelWarn, color.YellowString, format, args)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(LevelError, color.RedString, format, args)
}

func (l *Logger) emit(level LogLevel, paint func(string, ...interface{}) string, format string, args []interface{}) {
	if l == nil || l.level > level {
		return
	}
	prefix := level.String()
	if l.useColors {
		prefix = paint(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", timeString(), prefix, fmt.Sprintf(format, args...))
}

// timeString returns a formatted time string for the log prefix
func timeString() string {
	return time.Now().Format("15:04:05.000")
}
