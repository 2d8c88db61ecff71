// mixcalc computes chemical mixing instructions and prices soft-wash and
// pressure-washing jobs from the command line.
//
// Build:
//
//	go build -o mixcalc ./cmd/mixcalc
//
// Environment (also read from a .env file in the working directory):
//
//	MIXCALC_HOME       data directory, default ~/.mixcalc
//	MIXCALC_LOG_LEVEL  debug, info, warn or error (default warn)
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const logLevelEnv = "MIXCALC_LOG_LEVEL"

func main() {
	// A missing .env is normal; variables may come from the environment
	envErr := godotenv.Load()

	logger := newLogger(os.Getenv(logLevelEnv))
	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a text logger on stderr at the named level, warn when
// the name is empty or unknown.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil || level == "" {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
