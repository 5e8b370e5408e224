package fileops

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/opencontainers/go-digest"
)

func setScratch(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	xdg.Reload()
}

func TestDownload(t *testing.T) {
	setScratch(t)

	const body = "kernel image payload"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	destDir := t.TempDir()
	dest, err := Download(srv.URL+"/files/boot.img", destDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dest != filepath.Join(destDir, "boot.img") {
		t.Errorf("dest = %q", dest)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != body {
		t.Errorf("content = %q, want %q", data, body)
	}
}

func TestDownloadVerified(t *testing.T) {
	setScratch(t)

	const body = "verified payload"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	destDir := t.TempDir()
	_, err := DownloadVerified(srv.URL+"/asset.zip", destDir, digest.FromString(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDownloadDigestMismatch(t *testing.T) {
	setScratch(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "actual payload")
	}))
	defer srv.Close()

	destDir := t.TempDir()
	_, err := DownloadVerified(srv.URL+"/asset.zip", destDir, digest.FromString("expected payload"))
	if !errors.Is(err, ErrTransfer) {
		t.Fatalf("err = %v, want ErrTransfer", err)
	}

	assertNoPartialOutput(t, destDir)
}

func TestDownloadBadStatus(t *testing.T) {
	setScratch(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	destDir := t.TempDir()
	_, err := Download(srv.URL+"/missing.zip", destDir)
	if !errors.Is(err, ErrTransfer) {
		t.Fatalf("err = %v, want ErrTransfer", err)
	}

	assertNoPartialOutput(t, destDir)
}

func TestDownloadTruncatedTransfer(t *testing.T) {
	setScratch(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Declare more content than is sent, so the client sees the
		// connection die mid-stream.
		w.Header().Set("Content-Length", "4096")
		w.Write([]byte("short"))
	}))
	defer srv.Close()

	destDir := t.TempDir()
	_, err := Download(srv.URL+"/rom.zip", destDir)
	if !errors.Is(err, ErrTransfer) {
		t.Fatalf("err = %v, want ErrTransfer", err)
	}

	assertNoPartialOutput(t, destDir)
}

// A failed transfer must leave nothing at the destination.
func assertNoPartialOutput(t *testing.T, destDir string) {
	t.Helper()
	entries, err := os.ReadDir(destDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("destination not empty after failure: %v", entries)
	}
}
