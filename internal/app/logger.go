package app

import (
	"os"

	"food-marketplace/internal/config"
	"food-marketplace/internal/logx"
)

// NewLogger returns the JSON logger both binaries write to stdout.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, logx.ParseLevel(cfg.LogLevel))
}
