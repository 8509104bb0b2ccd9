package config

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logMu         sync.RWMutex
	logger        = zerolog.Nop()
	logFileHandle *os.File
)

// InitLogger points the application logger at a log file. The terminal
// belongs to the TUI, so nothing is written to stdout or stderr.
// An unparsable level falls back to info. An empty path disables logging.
func InitLogger(level, path string) error {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	closeLogFileLocked()

	if path == "" {
		logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	logFileHandle = f

	logger = newLogger(f, lvl)
	return nil
}

// InitWriterLogger sends logs to w. Used by the headless list command and tests.
func InitWriterLogger(level string, w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	closeLogFileLocked()
	logger = newLogger(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}, lvl)
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// CloseLogFile closes the log file, if any, and silences the logger
func CloseLogFile() {
	logMu.Lock()
	defer logMu.Unlock()
	closeLogFileLocked()
	logger = zerolog.Nop()
}

func closeLogFileLocked() {
	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil
	}
}

// GetLogger returns the application logger
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// ComponentLogger returns a sub-logger tagged with the component name
func ComponentLogger(component string) zerolog.Logger {
	l := GetLogger()
	return l.With().Str("component", component).Logger()
}
