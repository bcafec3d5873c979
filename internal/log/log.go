package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var (
	mu       sync.Mutex
	logger   *slog.Logger
	out      io.Writer = os.Stderr
	minLevel           = new(slog.LevelVar)
)

// initLogger builds the global logger on first use. Output goes to stderr so
// that stdout stays reserved for command results (and for "-o -").
func initLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(newHandler(out))
	}
	return logger
}

// newHandler picks a colored handler for terminals and a plain key=value
// handler for everything else (pipes, files, tests).
func newHandler(w io.Writer) slog.Handler {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return tint.NewHandler(w, &tint.Options{
			Level:      minLevel,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: minLevel})
}

// SetOutput redirects all subsequent log lines to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	logger = slog.New(newHandler(w))
}

func SetLevel(l Level) {
	minLevel.Set(toSlog(l))
}

func Debug(msg string, kv ...any) {
	initLogger().Debug(msg, kv...)
}

func Info(msg string, kv ...any) {
	initLogger().Info(msg, kv...)
}

func Warn(msg string, kv ...any) {
	initLogger().Warn(msg, kv...)
}

func Error(msg string, err error, kv ...any) {
	// Prepend error into key-value list.
	extended := append([]any{"err", err}, kv...)
	initLogger().Error(msg, extended...)
}

func toSlog(l Level) slog.Level {
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
