package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mcoot/letterswap/internal/cli"
)

func main() {
	// Settings in .env never override the real environment
	_ = godotenv.Load()

	// Logs go to stderr so they stay out of the game output
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cli.Execute(logger, level)
}
