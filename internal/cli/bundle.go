package cli

import (
	"context"

	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Represents the 'nhbuild bundle' command.
type BundleCmd struct {
	BuildEnv    string `arg:"" name:"buildenv" enum:"local,docker,podman" help:"Select the build environment."`
	LOSVersion  string `arg:"" name:"losversion" help:"Select the LineageOS version."`
	Codename    string `arg:"" help:"Select the device codename."`
	PackageType string `arg:"" name:"package_type" enum:"conan,generic-slim" help:"Select the package type of the bundle."`
	ConanUpload bool   `help:"Upload Conan packages to the remote."`
	CleanImage  bool   `help:"Remove the Docker/Podman image from the host after the build."`
	LogLevel    string `enum:"normal,verbose,quiet" default:"normal" help:"Select the log level."`
	Output      string `short:"o" help:"Save logs to a file." placeholder:"PATH"`
}

// Executes the bundle command.
func (c *BundleCmd) Run(ctx context.Context) error {
	return run(ctx, c.LogLevel, c.Output, request.Bundle{
		Common: request.Common{
			BuildEnv:   request.BuildEnv(c.BuildEnv),
			LOSVersion: c.LOSVersion,
			Codename:   c.Codename,
			CleanImage: c.CleanImage,
		},
		PackageType: request.PackageType(c.PackageType),
		ConanUpload: c.ConanUpload,
	})
}
