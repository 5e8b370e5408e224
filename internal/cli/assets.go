package cli

import (
	"context"

	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Represents the 'nhbuild assets' command.
type AssetsCmd struct {
	BuildEnv    string `arg:"" name:"buildenv" enum:"local,docker,podman" help:"Select the build environment."`
	LOSVersion  string `arg:"" name:"losversion" help:"Select the LineageOS version."`
	Codename    string `arg:"" help:"Select the device codename."`
	Chroot      string `arg:"" enum:"full,minimal" help:"Select the Kali chroot type."`
	ExtraAssets string `help:"Select a JSON file with extra assets." placeholder:"PATH"`
	ROMOnly     bool   `name:"rom-only" help:"Download only the ROM as an asset."`
	Clean       bool   `help:"Autoclean the assets folder if it exists."`
	CleanImage  bool   `help:"Remove the Docker/Podman image from the host after the build."`
	LogLevel    string `enum:"normal,verbose,quiet" default:"normal" help:"Select the log level."`
	Output      string `short:"o" help:"Save logs to a file." placeholder:"PATH"`
}

// Executes the assets command.
func (c *AssetsCmd) Run(ctx context.Context) error {
	return run(ctx, c.LogLevel, c.Output, request.Assets{
		Common: request.Common{
			BuildEnv:   request.BuildEnv(c.BuildEnv),
			LOSVersion: c.LOSVersion,
			Codename:   c.Codename,
			CleanImage: c.CleanImage,
		},
		Chroot:      request.Chroot(c.Chroot),
		ExtraAssets: c.ExtraAssets,
		ROMOnly:     c.ROMOnly,
		Clean:       c.Clean,
	})
}
