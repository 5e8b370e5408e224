package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
)

// Copies a file or the contents of a directory into dst.
//
// A directory source merges its entries into dst, creating it if missing and
// skipping any entry whose name appears in exclude. A file source is copied
// to dst directly; when dst is an existing directory, the file keeps its
// name inside it.
func Copy(src, dst string, exclude ...string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	if info.IsDir() {
		return copyDirContents(src, dst, exclude)
	}

	return copyFile(src, fileDest(src, dst))
}

// Copies every non-excluded entry of a source directory into dst.
func copyDirContents(src, dst string, exclude []string) error {
	if err := os.MkdirAll(dst, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	for _, entry := range entries {
		if slices.Contains(exclude, entry.Name()) {
			continue
		}

		srcEntry := filepath.Join(src, entry.Name())
		dstEntry := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyTree(srcEntry, dstEntry); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcEntry, dstEntry); err != nil {
			return err
		}
	}

	return nil
}

// Copies a directory tree recursively.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTransfer, err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTransfer, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, paths.DefaultDirMode); err != nil {
				return fmt.Errorf("%w: %w", ErrTransfer, err)
			}
			return nil
		}

		return copyFile(path, target)
	})
}

// Copies a single regular file, preserving its permission bits.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return out.Close()
}

// Resolves the destination path for a file copy, descending into dst when it
// is an existing directory.
func fileDest(src, dst string) string {
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}
	return dst
}
