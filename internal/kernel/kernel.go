package kernel

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/updeshxp/op5-nethunter-kernel/internal/command"
	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
)

// Options for a kernel build.
type Options struct {
	Codename   string
	LOSVersion string
	Clean      bool // Clean the workspace instead of building.
}

// Builds the kernel for a device, or cleans the workspace when requested.
//
// The kernel source tree must already be present under the build root. The
// device descriptor supplies the target architecture and defconfig; the
// toolchain itself is the source tree's business.
func Run(ctx context.Context, e *env.Environment, device manifest.Device, opts Options) error {
	dir := paths.Kernel(e.Root)

	if opts.Clean {
		slog.Info("cleaning kernel workspace", "dir", dir)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: %w", ErrKernel, err)
		}
		return nil
	}

	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("%w: kernel source tree missing at %s", ErrKernel, dir)
	}

	slog.Info("building kernel",
		"codename", opts.Codename,
		"losversion", opts.LOSVersion,
		"arch", device.Arch,
		"defconfig", device.Defconfig,
	)

	steps := [][]string{
		{"make", "-C", dir, "ARCH=" + device.Arch, device.Defconfig},
		{"make", "-C", dir, "ARCH=" + device.Arch, "-j" + strconv.Itoa(runtime.NumCPU())},
	}

	for _, step := range steps {
		if _, err := command.Launch(ctx, e.LogLevel, step[0], step[1:]...); err != nil {
			return fmt.Errorf("%w: %w", ErrKernel, err)
		}
	}

	slog.Info("kernel build finished", "codename", opts.Codename)
	return nil
}
