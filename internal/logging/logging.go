// Package logging provides the leveled, named-channel logging sink. Installer
// messages and streamed engine output are logged on separate channels so
// operators can filter one from the other.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Channel names used across the installer.
const (
	// ChannelInstaller carries the installer's own messages.
	ChannelInstaller = "installer"
	// ChannelEngine carries classified output streamed from the engine.
	ChannelEngine = "engine"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes Level satisfy fmt.Stringer.
func (l Level) String() string {
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
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

// Init configures the sink with a minimum level and output writer.
// It should be called once at startup; Log falls back to stderr otherwise.
func Init(level Level, out io.Writer) {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level.slogLevel()})
	mu.Lock()
	defaultLogger = slog.New(handler)
	mu.Unlock()
}

func logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Log writes a message at the given level on the named channel.
func Log(level Level, channel string, format string, args ...any) {
	l := logger()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if l == nil {
		fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", level, channel, msg)
		return
	}
	if !l.Enabled(context.Background(), level.slogLevel()) {
		return
	}
	l.LogAttrs(context.Background(), level.slogLevel(), msg, slog.String("channel", channel))
}

// Debug logs a debug message on the named channel.
func Debug(channel string, format string, args ...any) {
	Log(LevelDebug, channel, format, args...)
}

// Info logs an informational message on the named channel.
func Info(channel string, format string, args ...any) {
	Log(LevelInfo, channel, format, args...)
}

// Warn logs a warning on the named channel.
func Warn(channel string, format string, args ...any) {
	Log(LevelWarn, channel, format, args...)
}

// Error logs an error on the named channel.
func Error(channel string, err error, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	Log(LevelError, channel, "%s", msg)
}
