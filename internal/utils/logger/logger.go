package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"jsonapi/internal/app/client/config"
	"jsonapi/internal/utils/logger/handlers/slogpretty"
)

// New создает логгер для окружения. Весь вывод идет в stderr.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stderr, false)
}

// NewWithWriter создает логгер с указанным выводом; debug принудительно включает уровень DEBUG.
func NewWithWriter(env string, out io.Writer, debug bool) *slog.Logger {
	return NewWithLevel(env, "", out, debug)
}

// NewWithLevel - как NewWithWriter, но уровень для prod берется из levelName (LOG_LEVEL).
func NewWithLevel(env, levelName string, out io.Writer, debug bool) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal, "":
		log = newPrettySlog(out, slog.LevelDebug)
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		level := parseLevel(levelName)
		if debug {
			level = slog.LevelDebug
		}
		log = slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	return log
}

func parseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupPrettySlog() *slog.Logger {
	return newPrettySlog(os.Stderr, slog.LevelDebug)
}

func newPrettySlog(out io.Writer, level slog.Level) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	return slog.New(opts.NewPrettyHandler(out))
}

// Err - атрибут ошибки для логов
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
