package main

import (
	"log/slog"
	"os"
	"time"

	"carhunt/cmd/carhunt/commands"
	"carhunt/lib/serviceutil"

	"github.com/lmittmann/tint"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("CARHUNT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)

	commands.ExecuteContext(serviceutil.SignalContext())
}
