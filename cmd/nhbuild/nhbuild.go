package main

import (
	"log/slog"
	"os"

	"github.com/updeshxp/op5-nethunter-kernel/internal"
	"github.com/updeshxp/op5-nethunter-kernel/internal/cli"
	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
)

// The entry point for the build wrapper.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero
// code.
func main() {
	slog.SetDefault(env.NewLogger(os.Stderr, isatty(os.Stderr), logLevel()))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("nhbuild is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the startup log level derived from build-time linker flags.
//
// The level is reconfigured with the parsed flags once a subcommand runs.
func logLevel() env.LogLevel {
	if internal.IsVerbose() {
		return env.LevelVerbose
	}
	if internal.IsQuiet() {
		return env.LevelQuiet
	}
	return env.LevelNormal
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
