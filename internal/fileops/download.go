package fileops

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"github.com/updeshxp/op5-nethunter-kernel/internal/paths"
)

// Downloads a URL into destDir and returns the destination path.
//
// The transfer blocks until complete or failed; there is no retry and no
// timeout. See [DownloadVerified] for the partial-output guarantee.
func Download(url, destDir string) (string, error) {
	return DownloadVerified(url, destDir, "")
}

// Downloads a URL into destDir, verifying the content digest when one is
// given, and returns the destination path.
//
// The body streams into a scratch file under the cache directory and is
// moved into place only after it has been fully received and verified. A
// failed transfer removes the scratch file and leaves nothing at the
// destination.
func DownloadVerified(url, destDir string, expected digest.Digest) (string, error) {
	name := path.Base(url)
	slog.Info("downloading", "file", name, "url", url)

	scratch, err := stage(url, expected)
	if err != nil {
		return "", err
	}
	defer os.Remove(scratch)

	dest := filepath.Join(destDir, name)
	if err := move(scratch, dest); err != nil {
		return "", err
	}

	slog.Info("download complete", "file", name)
	return dest, nil
}

// Streams the URL body into a fresh scratch file and returns its path.
//
// The scratch file is removed before returning an error.
func stage(url string, expected digest.Digest) (string, error) {
	if err := os.MkdirAll(paths.Scratch(), paths.DefaultDirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	scratch, err := os.CreateTemp(paths.Scratch(), path.Base(url)+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	if err := fill(scratch, url, expected); err != nil {
		scratch.Close()
		os.Remove(scratch.Name())
		return "", err
	}

	if err := scratch.Close(); err != nil {
		os.Remove(scratch.Name())
		return "", fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	return scratch.Name(), nil
}

// Writes the URL body into the scratch file, verifying the digest when one
// is expected.
func fill(scratch *os.File, url string, expected digest.Digest) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransfer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: unexpected status %s", ErrTransfer, url, resp.Status)
	}

	var w io.Writer = scratch
	var verifier digest.Verifier
	if expected != "" {
		if err := expected.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrTransfer, err)
		}
		verifier = expected.Verifier()
		w = io.MultiWriter(scratch, verifier)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransfer, url, err)
	}

	if verifier != nil && !verifier.Verified() {
		return fmt.Errorf("%w: %s: digest mismatch, want %s", ErrTransfer, url, expected)
	}

	return nil
}

// Moves the scratch file to its destination, falling back to a copy when the
// cache and the destination live on different filesystems.
func move(scratch, dest string) error {
	if err := os.Rename(scratch, dest); err == nil {
		return nil
	}

	if err := copyFile(scratch, dest); err != nil {
		os.Remove(dest)
		return err
	}

	return nil
}
