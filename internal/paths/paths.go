package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/updeshxp/op5-nethunter-kernel/internal"
)

const (

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the manifests directory under the build root.
func Manifests(root string) string {
	return filepath.Join(root, "manifests")
}

// Path to the devices manifest.
func DevicesManifest(root string) string {
	return filepath.Join(Manifests(root), "devices.json")
}

// Path to the product metadata manifest.
func ProductManifest(root string) string {
	return filepath.Join(Manifests(root), "info.json")
}

// Path to the kernel workspace under the build root.
func Kernel(root string) string {
	return filepath.Join(root, "kernel")
}

// Path to the collected assets directory under the build root.
func Assets(root string) string {
	return filepath.Join(root, "assets")
}

// Path to the bundle output directory under the build root.
func Bundle(root string) string {
	return filepath.Join(root, "bundle")
}

// Path to the scratch directory for in-flight downloads.
//
//	Linux:   $XDG_CACHE_HOME/nhbuild or ~/.cache/nhbuild
//	macOS:   ~/Library/Caches/nhbuild
func Scratch() string {
	return filepath.Join(xdg.CacheHome, internal.Name)
}
