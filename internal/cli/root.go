package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/updeshxp/op5-nethunter-kernel/internal"
	"github.com/updeshxp/op5-nethunter-kernel/internal/clean"
	"github.com/updeshxp/op5-nethunter-kernel/internal/dispatch"
	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
	"github.com/updeshxp/op5-nethunter-kernel/internal/validate"
)

// Represents the root command for the build wrapper.
var RootCmd struct {
	Kernel  KernelCmd  `cmd:"" help:"Build the kernel."`
	Assets  AssetsCmd  `cmd:"" help:"Collect device and ROM assets."`
	Bundle  BundleCmd  `cmd:"" help:"Build the kernel and collect assets into a distributable bundle."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments and runs the selected subcommand.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Clean mode wipes the build root and terminates without resolving a
	// subcommand. Handled before parsing because the kernel and assets
	// commands carry their own --clean flags.
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--clean" {
		root, err := env.RootPath()
		if err != nil {
			return err
		}
		return clean.Root(root)
	}

	parser, err := kong.New(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("A wrapper around the NetHunter kernel build pipelines.\n\nBuilds run directly on the host or inside a Docker/Podman container. Run with --clean to wipe the build root and exit."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}

	// Show help when invoked without arguments.
	if len(args) == 0 {
		args = []string{"--help"}
	}

	kongCtx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	return kongCtx.Run()
}

// Establishes the environment, validates the request against the device
// catalog and host facts, and dispatches it.
func run(ctx context.Context, level, output string, req request.Request) error {
	e, err := env.Setup(env.Options{
		LogLevel:  env.LogLevel(level),
		OutputLog: output,
	})
	if err != nil {
		return err
	}
	defer e.Close()

	catalog, err := manifest.LoadDevices(paths.DevicesManifest(e.Root))
	if err != nil {
		return err
	}

	if err := validate.Check(req, validate.HostFacts(), catalog); err != nil {
		return err
	}

	return dispatch.New(e, catalog).Run(ctx, req)
}
