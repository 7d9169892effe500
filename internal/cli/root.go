package cli

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	"github.com/sebd71/obs-service-go-modules/internal/buildinfo"
)

// Represents the root command for the go_modules service.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Service ServiceCmd `cmd:"" default:"withargs" help:"Vendor a Go module's dependencies from a source archive."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
//
// The service command is the default, so the binary can be invoked with
// flags only, the way the build pipeline calls source services.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(buildinfo.Name),
		kong.Description("Source service that vendors Go module dependencies.\n\nExtracts a source archive, runs the module toolchain against it, and packages the resulting vendor tree."),
		kong.UsageOnError(),
		kong.Vars{
			"version": buildinfo.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	handler, ok := slog.Default().Handler().(*charmlog.Logger)
	if !ok {
		return // Not the charm handler, nothing to configure
	}

	debug := RootCmd.Debug || buildinfo.IsDebug()
	quiet := RootCmd.Quiet || buildinfo.IsQuiet()
	verbose := RootCmd.Verbose || buildinfo.IsVerbose()

	switch {
	case debug:
		handler.SetLevel(charmlog.DebugLevel)
	case quiet:
		handler.SetLevel(charmlog.WarnLevel)
	default:
		handler.SetLevel(charmlog.InfoLevel)
	}

	handler.SetReportCaller(verbose)
}
