package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/loganlanou/soleshop/internal/logging"
)

func init() {
	logger, err := logging.New(os.Getenv("LOG_LEVEL"), os.Stderr)
	if err != nil {
		panic(fmt.Sprintf("configure logging: %v", err))
	}
	slog.SetDefault(logger)
	slog.Debug("debug logging enabled")
}
