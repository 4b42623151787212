package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"
)

var LevelNames = map[slog.Leveler]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
}

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	_, debug := os.LookupEnv("ALIVECHECK_DEBUG")
	Init(os.Stderr, debug)
}

func replace(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(groups) == 0 {
		t := a.Value.Time().Format("2006-01-02 15:04:05")
		return slog.Attr{Key: slog.TimeKey, Value: slog.StringValue(t)}
	}

	if a.Key == slog.LevelKey {
		lvl := a.Value.Any().(slog.Level)
		label, ok := LevelNames[lvl]
		if !ok {
			label = lvl.String()
		}
		a.Value = slog.StringValue(label)
		return a
	}

	// Remove the directory from the source's filename.
	if a.Key == slog.SourceKey {
		if source, ok := a.Value.Any().(*slog.Source); ok {
			source.File = filepath.Base(source.File)
		}
	}
	return a
}

// Init replaces the package logger. verbose enables DEBUG records with source
// locations.
func Init(w io.Writer, verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   verbose,
		Level:       level,
		ReplaceAttr: replace,
	})))
}

func GetLogger() *slog.Logger {
	return logger.Load()
}

func log(ctx context.Context, lvl slog.Level, msg string, args ...any) {
	l := GetLogger()
	if !l.Enabled(ctx, lvl) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}

func logf(ctx context.Context, lvl slog.Level, format string, args ...any) {
	l := GetLogger()
	if !l.Enabled(ctx, lvl) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, fmt.Sprintf(format, args...), pcs[0])
	_ = l.Handler().Handle(ctx, r)
}

func Error(msg string, args ...any) {
	log(context.Background(), slog.LevelError, msg, args...)
}

func Errorf(format string, args ...any) {
	logf(context.Background(), slog.LevelError, format, args...)
}

func Info(msg string, args ...any) {
	log(context.Background(), slog.LevelInfo, msg, args...)
}

func Infof(format string, args ...any) {
	logf(context.Background(), slog.LevelInfo, format, args...)
}

func Warn(msg string, args ...any) {
	log(context.Background(), slog.LevelWarn, msg, args...)
}

func Warnf(format string, args ...any) {
	logf(context.Background(), slog.LevelWarn, format, args...)
}

func Debug(msg string, args ...any) {
	log(context.Background(), slog.LevelDebug, msg, args...)
}

func Debugf(format string, args ...any) {
	logf(context.Background(), slog.LevelDebug, format, args...)
}
