package cli

import (
	"context"

	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Represents the 'nhbuild kernel' command.
type KernelCmd struct {
	BuildEnv   string `arg:"" name:"buildenv" enum:"local,docker,podman" help:"Select the build environment."`
	LOSVersion string `arg:"" name:"losversion" help:"Select the LineageOS version."`
	Codename   string `arg:"" help:"Select the device codename."`
	Clean      bool   `short:"c" help:"Don't build anything, just clean the kernel workspace."`
	CleanImage bool   `help:"Remove the Docker/Podman image from the host after the build."`
	LogLevel   string `enum:"normal,verbose,quiet" default:"normal" help:"Select the log level."`
	Output     string `short:"o" help:"Save logs to a file." placeholder:"PATH"`
}

// Executes the kernel command.
func (c *KernelCmd) Run(ctx context.Context) error {
	return run(ctx, c.LogLevel, c.Output, request.Kernel{
		Common: request.Common{
			BuildEnv:   request.BuildEnv(c.BuildEnv),
			LOSVersion: c.LOSVersion,
			Codename:   c.Codename,
			CleanImage: c.CleanImage,
		},
		Clean: c.Clean,
	})
}
