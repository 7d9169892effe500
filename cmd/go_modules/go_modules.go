package main

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/sebd71/obs-service-go-modules/internal/buildinfo"
	"github.com/sebd71/obs-service-go-modules/internal/cli"
)

// The entry point for the go_modules source service.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero
// code.
func main() {
	slog.SetDefault(slog.New(logger()))

	slog.Debug("build", "version", buildinfo.VersionString())

	slog.Debug("go_modules is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *charmlog.Logger {
	handler := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		Prefix:          buildinfo.Name,
	})
	handler.SetLevel(logLevel())
	return handler
}

// Returns the log level derived from build-time linker flags.
func logLevel() charmlog.Level {
	if buildinfo.IsDebug() {
		return charmlog.DebugLevel
	}
	if buildinfo.IsQuiet() {
		return charmlog.WarnLevel
	}
	return charmlog.InfoLevel
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
