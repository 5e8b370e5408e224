package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/updeshxp/op5-nethunter-kernel/internal/env"
	"github.com/updeshxp/op5-nethunter-kernel/internal/fileops"
	"github.com/updeshxp/op5-nethunter-kernel/internal/manifest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
	"github.com/updeshxp/op5-nethunter-kernel/internal/request"
)

// Base URL for the auxiliary rootfs archives.
const chrootBaseURL = "https://kali.download/nethunter-images/current/rootfs"

// Options for asset collection.
type Options struct {
	Codename    string
	LOSVersion  string
	Chroot      request.Chroot
	Clean       bool   // Recreate the assets directory if it already exists.
	ROMOnly     bool   // Collect only the ROM.
	ExtraAssets string // Optional path to a JSON manifest of extra assets.
}

// Extra assets selected via a user-supplied JSON manifest.
type extraManifest struct {
	URLs  []string `json:"urls,omitempty"`  // Downloaded into the assets directory.
	Files []string `json:"files,omitempty"` // Local paths copied into the assets directory.
}

// Collects the ROM and device assets into the assets directory.
//
// The ROM is always fetched. Unless the collection is restricted to the ROM,
// the auxiliary rootfs for the selected chroot flavor, the device's asset
// list (digest-verified where declared), and any extra assets follow.
func Collect(ctx context.Context, e *env.Environment, device manifest.Device, opts Options) error {
	dir := paths.Assets(e.Root)
	if err := prepare(dir, opts.Clean); err != nil {
		return err
	}

	slog.Info("collecting assets",
		"codename", opts.Codename,
		"losversion", opts.LOSVersion,
		"rom_only", opts.ROMOnly,
	)

	if _, err := fileops.Download(renderURL(device.ROM, opts), dir); err != nil {
		return fmt.Errorf("%w: %w", ErrAssets, err)
	}

	if opts.ROMOnly {
		slog.Info("assets collected", "dir", dir)
		return nil
	}

	rootfs := fmt.Sprintf("%s/kali-nethunter-rootfs-%s-%s.tar.xz", chrootBaseURL, opts.Chroot, device.Arch)
	if _, err := fileops.Download(rootfs, dir); err != nil {
		return fmt.Errorf("%w: %w", ErrAssets, err)
	}

	for _, asset := range device.Assets {
		if _, err := fileops.DownloadVerified(renderURL(asset.URL, opts), dir, asset.Digest); err != nil {
			return fmt.Errorf("%w: %w", ErrAssets, err)
		}
	}

	if opts.ExtraAssets != "" {
		if err := collectExtra(opts.ExtraAssets, dir); err != nil {
			return err
		}
	}

	slog.Info("assets collected", "dir", dir)
	return nil
}

// Ensures the assets directory exists, recreating it when a clean collection
// was requested.
func prepare(dir string, clean bool) error {
	if _, err := os.Stat(dir); err == nil {
		if !clean {
			slog.Info("reusing existing assets directory", "dir", dir)
			return nil
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("%w: %w", ErrAssets, err)
		}
	}

	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrAssets, err)
	}

	return nil
}

// Collects the assets listed in a user-supplied extra assets manifest.
func collectExtra(path, dir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssets, err)
	}

	var extra extraManifest
	if err := json.Unmarshal(data, &extra); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrAssets, path, err)
	}

	for _, url := range extra.URLs {
		if _, err := fileops.Download(url, dir); err != nil {
			return fmt.Errorf("%w: %w", ErrAssets, err)
		}
	}

	for _, file := range extra.Files {
		if err := fileops.Copy(file, dir); err != nil {
			return fmt.Errorf("%w: %w", ErrAssets, err)
		}
	}

	return nil
}

// Substitutes the {losversion} and {codename} placeholders in a URL template.
func renderURL(template string, opts Options) string {
	url := strings.ReplaceAll(template, "{losversion}", opts.LOSVersion)
	return strings.ReplaceAll(url, "{codename}", opts.Codename)
}
