package bundle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/updeshxp/op5-nethunter-kernel/internal/assets"
	"github.com/updeshxp/op5-nethunter-kernel/internal/command"
	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
	"github.com/updeshxp/op5-nethunter-kernel/internal/fileops"
	"github.com/updeshxp/op5-nethunter-kernel/internal/kernel"
	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Conan remote that receives uploaded packages.
const conanRemote = "nethunter"

// Options for bundle creation.
type Options struct {
	Codename    string
	LOSVersion  string
	PackageType request.PackageType
	ConanUpload bool // Upload Conan packages to the remote after bundling.
}

// Builds the kernel, collects the ROM, and packages both into a
// distributable bundle.
//
// The conan package type hands the staged artifacts to the conan CLI, with
// an optional upload to the remote. The generic-slim type produces a
// compressed archive without the auxiliary rootfs.
func Create(ctx context.Context, e *env.Environment, device manifest.Device, opts Options) error {
	if err := kernel.Run(ctx, e, device, kernel.Options{
		Codename:   opts.Codename,
		LOSVersion: opts.LOSVersion,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	if err := assets.Collect(ctx, e, device, assets.Options{
		Codename:   opts.Codename,
		LOSVersion: opts.LOSVersion,
		Clean:      true,
		ROMOnly:    true,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	dir := paths.Bundle(e.Root)
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	slog.Info("creating bundle",
		"codename", opts.Codename,
		"losversion", opts.LOSVersion,
		"package_type", opts.PackageType,
	)

	switch opts.PackageType {
	case request.PackageConan:
		return createConan(ctx, e, opts)
	default:
		return createGenericSlim(e, device, dir, opts)
	}
}

// Packages the staged artifacts with the conan CLI and optionally uploads
// them to the remote.
func createConan(ctx context.Context, e *env.Environment, opts Options) error {
	reference := fmt.Sprintf("%s/%s@%s/%s", e.Product.Name, e.Product.Version, opts.Codename, opts.LOSVersion)

	if _, err := command.Launch(ctx, e.LogLevel, "conan", "export-pkg", e.Root, reference, "--force"); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	if opts.ConanUpload {
		if _, err := command.Launch(ctx, e.LogLevel, "conan", "upload", reference, "--all", "-r", conanRemote); err != nil {
			return fmt.Errorf("%w: %w", ErrBundle, err)
		}
		slog.Info("conan packages uploaded", "reference", reference, "remote", conanRemote)
	}

	slog.Info("bundle created", "reference", reference)
	return nil
}

// Archives the collected artifacts into a compressed tarball.
//
// The staging directory holds the ROM plus the kernel boot output; it is
// removed once the tarball is written.
func createGenericSlim(e *env.Environment, device manifest.Device, dir string, opts Options) error {
	stage := filepath.Join(dir, "staging")
	if err := os.RemoveAll(stage); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	if err := fileops.Copy(paths.Assets(e.Root), stage); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	boot := filepath.Join(paths.Kernel(e.Root), "arch", device.Arch, "boot")
	if _, err := os.Stat(boot); err == nil {
		if err := fileops.Copy(boot, stage); err != nil {
			return fmt.Errorf("%w: %w", ErrBundle, err)
		}
	}

	name := fmt.Sprintf("%s-%s-%s-%s.tar.gz", e.Product.Name, e.Product.Version, opts.Codename, opts.LOSVersion)
	out := filepath.Join(dir, name)

	if err := fileops.Tarball(stage, out); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	if err := os.RemoveAll(stage); err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}

	slog.Info("bundle created", "package", out)
	return nil
}
