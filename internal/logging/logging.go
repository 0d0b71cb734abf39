// Package logging routes application logs to a rotating file under the user
// cache directory, falling back to stderr when the file cannot be opened.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var (
	mu    sync.Mutex
	level = LevelInfo
)

// DefaultPath returns the log file location under the user cache directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "examine.log"
	}
	return filepath.Join(home, ".cache", "examine", "examine.log")
}

// Init directs the standard logger to a size-rotated file at path. An empty
// path keeps stderr output.
func Init(path string, lvl Level) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
	})
}

// SetLevel changes the minimum severity that gets written.
func SetLevel(lvl Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
}

func write(lvl Level, tag, format string, args ...any) {
	mu.Lock()
	min := level
	mu.Unlock()
	if lvl < min {
		return
	}
	log.Printf("[%s] %s", tag, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) { write(LevelDebug, "DEBUG", format, args...) }

// Infof logs an informational message.
func Infof(format string, args ...any) { write(LevelInfo, "INFO", format, args...) }

// Warnf logs a warning.
func Warnf(format string, args ...any) { write(LevelWarn, "WARN", format, args...) }

// Errorf logs an error.
func Errorf(format string, args ...any) { write(LevelError, "ERROR", format, args...) }
