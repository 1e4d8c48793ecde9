package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// setupLogging installs the process-wide slog handler: compact tint
// output for local runs, JSON in production. It runs before the config
// package validates log.level, so an unset or unknown value reads as
// info here.
func setupLogging() {
	level, ok := logLevels[viper.GetString("log.level")]
	if !ok {
		level = slog.LevelInfo
	}

	var h slog.Handler
	switch viper.GetString("env") {
	case "prod", "production":
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	default:
		h = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			AddSource:  true,
			TimeFormat: time.TimeOnly,
		})
	}

	slog.SetDefault(slog.New(h))

	// net/http logs through the stdlib logger; route it into slog.
	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo).Writer())
}
