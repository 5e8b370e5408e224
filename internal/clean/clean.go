package clean

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
)

// Removes generated build artifacts from the root directory.
//
// Clears the kernel workspace, collected assets, bundle output, and any
// top-level log files. Manifests and everything else are untouched.
func Root(root string) error {
	artifacts := []string{paths.Kernel(root), paths.Assets(root), paths.Bundle(root)}
	for _, path := range artifacts {
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("cleaning %s: %w", path, err)
		}
	}

	logs, err := filepath.Glob(filepath.Join(root, "*.log"))
	if err != nil {
		return fmt.Errorf("cleaning logs: %w", err)
	}
	for _, log := range logs {
		if err := os.Remove(log); err != nil {
			return fmt.Errorf("cleaning %s: %w", log, err)
		}
	}

	slog.Info("root directory cleaned", "root", root)
	return nil
}
