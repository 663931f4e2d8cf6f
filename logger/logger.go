package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents logging level
type Level int

const (
	LevelError Level = iota
	LevelInfo
	LevelDebug
)

var (
	enabled bool
	level   Level        = LevelError
	out     *slog.Logger = newSlog(os.Stderr)
)

func newSlog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Init configures logger from environment variables.
// Supported vars:
//
//	LOG=1            -> enable at info level
//	LOG_LEVEL=debug  -> enable at debug level (info/error also supported)
func Init() {
	enabled = false
	level = LevelError
	if os.Getenv("LOG") == "1" {
		enabled = true
		level = LevelInfo
	}
	if lv := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))); lv != "" {
		enabled = true
		switch lv {
		case "debug":
			level = LevelDebug
		case "info":
			level = LevelInfo
		case "error":
			level = LevelError
		case "off", "none", "0":
			enabled = false
		default:
			// unknown -> keep enabled but at error level
			level = LevelError
		}
	}
}

// SetOutput redirects log records to w.
func SetOutput(w io.Writer) {
	out = newSlog(w)
}

func Enabled() bool { return enabled }

func Debugf(format string, v ...any) {
	if !enabled || level < LevelDebug {
		return
	}
	out.Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	if !enabled || level < LevelInfo {
		return
	}
	out.Info(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	if !enabled || level < LevelError {
		return
	}
	out.Error(fmt.Sprintf(format, v...))
}
