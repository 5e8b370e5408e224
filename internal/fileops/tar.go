package fileops

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
)

// Writes a gzip-compressed tarball of a directory tree.
//
// Entries are named relative to srcDir. The output file is removed when
// archiving fails partway through.
func Tarball(srcDir, dest string) error {
	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	if err := writeTarball(out, srcDir); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(dest)
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return nil
}

// Streams a directory tree as a gzipped tar archive.
func writeTarball(out io.Writer, srcDir string) error {
	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	if err := writeDirToTar(tw, srcDir); err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return nil
}

// Writes a directory tree to a tar writer with paths relative to hostDir.
func writeDirToTar(tw *tar.Writer, hostDir string) error {
	return filepath.WalkDir(hostDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(hostDir, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		return writeTarEntry(tw, path, filepath.ToSlash(relPath), d)
	})
}

// Writes a single file or directory entry to a tar writer.
func writeTarEntry(tw *tar.Writer, hostPath, archivePath string, d os.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = archivePath

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	if info.Mode().IsRegular() {
		f, err := os.Open(hostPath)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	}

	return nil
}
