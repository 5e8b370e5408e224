package env

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
)

// Log verbosity requested on the command line.
type LogLevel string

const (
	LevelNormal  LogLevel = "normal"
	LevelVerbose LogLevel = "verbose"
	LevelQuiet   LogLevel = "quiet"
)

// Maps the CLI log level to an slog level.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LevelVerbose:
		return slog.LevelDebug
	case LevelQuiet:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Process-wide state for a single build run.
//
// Built once during startup, before any collaborator runs, and read-only
// afterwards. Collaborators receive it by reference; nothing is published
// through ambient process state.
type Environment struct {
	Root      string           // Resolved directory of the invoked executable.
	LogLevel  LogLevel         // Effective log verbosity.
	Product   manifest.Product // Product name and version from the manifest.
	OutputLog string           // Log file path, empty when logging to stderr.

	logFile *os.File
}

// Controls environment construction.
type Options struct {
	LogLevel  LogLevel // Requested log verbosity.
	OutputLog string   // Optional log file path; empty logs to stderr.
}

// Establishes the process environment for a build run.
//
// Resolves the build root from the invoked executable, changes the working
// directory to it, and loads the product manifest. When an output log was
// requested, any pre-existing file at that path is removed, and the default
// logger is switched to file-backed output; otherwise the default logger is
// reconfigured on stderr with the requested level.
func Setup(opts Options) (*Environment, error) {
	root, err := RootPath()
	if err != nil {
		return nil, err
	}

	if err := os.Chdir(root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	product, err := manifest.LoadProduct(paths.ProductManifest(root))
	if err != nil {
		return nil, err
	}

	e := &Environment{
		Root:     root,
		LogLevel: opts.LogLevel,
		Product:  product,
	}

	if opts.OutputLog == "" {
		slog.SetDefault(NewLogger(os.Stderr, isTerminal(os.Stderr), e.LogLevel))
		return e, nil
	}

	path := opts.OutputLog
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	f, err := openLogFile(path)
	if err != nil {
		return nil, err
	}

	e.OutputLog = path
	e.logFile = f
	slog.SetDefault(NewLogger(f, false, e.LogLevel))
	slog.Info("writing output to a log file", "path", path)

	return e, nil
}

// Releases the log file when output redirection was requested.
func (e *Environment) Close() error {
	if e.logFile == nil {
		return nil
	}
	return e.logFile.Close()
}

// Returns the resolved directory of the invoked executable.
func RootPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSetup, err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSetup, err)
	}

	return filepath.Dir(resolved), nil
}

// Constructs a logger over the given writer with the requested level.
func NewLogger(w io.Writer, isTTY bool, level LogLevel) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level.Slog(),
		TimeFormat: time.Kitchen,
		NoColor:    !isTTY,
	}))
}

// Removes any pre-existing file at the path and creates a fresh log file.
func openLogFile(path string) (*os.File, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, paths.DefaultFileMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	return f, nil
}

// Whether the given file is an interactive terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
