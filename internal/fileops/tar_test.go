package fileops

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestTarball(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "rom.zip"), "rom")
	writeFile(t, filepath.Join(src, "boot", "Image.gz"), "kernel")

	dest := filepath.Join(t.TempDir(), "bundle.tar.gz")
	if err := Tarball(src, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := readTarball(t, dest)
	if entries["rom.zip"] != "rom" {
		t.Errorf("rom.zip = %q, want %q", entries["rom.zip"], "rom")
	}
	if entries["boot/Image.gz"] != "kernel" {
		t.Errorf("boot/Image.gz = %q, want %q", entries["boot/Image.gz"], "kernel")
	}
}

func TestTarballMissingSource(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "bundle.tar.gz")
	if err := Tarball(filepath.Join(t.TempDir(), "missing"), dest); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Error("failed archive left partial output")
	}
}

// Reads a gzipped tar archive into a map of regular file contents.
func readTarball(t *testing.T, path string) map[string]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	tr := tar.NewReader(gz)

	entries := make(map[string]string)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatal(err)
		}
		entries[header.Name] = string(data)
	}

	return entries
}
