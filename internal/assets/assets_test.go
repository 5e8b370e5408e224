package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRenderURL(t *testing.T) {
	opts := Options{Codename: "cheeseburger", LOSVersion: "20.0"}

	tests := []struct {
		template string
		want     string
	}{
		{
			"https://example.org/full/{codename}/lineage-{losversion}.zip",
			"https://example.org/full/cheeseburger/lineage-20.0.zip",
		},
		{
			"https://example.org/static.zip",
			"https://example.org/static.zip",
		},
	}

	for _, tt := range tests {
		if got := renderURL(tt.template, opts); got != tt.want {
			t.Errorf("renderURL(%q) = %q, want %q", tt.template, got, tt.want)
		}
	}
}

func TestPrepareCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")

	if err := prepare(dir, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("assets directory not created: %v", err)
	}
}

func TestPrepareCleanRecreates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	stale := filepath.Join(dir, "stale.zip")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := prepare(dir, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale asset should have been removed")
	}
}

func TestPrepareReusesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	existing := filepath.Join(dir, "rom.zip")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("rom"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := prepare(dir, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(existing); err != nil {
		t.Error("existing asset should have been kept")
	}
}

func TestCollectExtraLocalFiles(t *testing.T) {
	src := filepath.Join(t.TempDir(), "patch.img")
	if err := os.WriteFile(src, []byte("patch"), 0644); err != nil {
		t.Fatal(err)
	}

	manifestPath := filepath.Join(t.TempDir(), "extra.json")
	if err := os.WriteFile(manifestPath, []byte(`{"files": [`+jsonString(src)+`]}`), 0644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	if err := collectExtra(manifestPath, dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "patch.img")); err != nil {
		t.Errorf("extra asset not copied: %v", err)
	}
}

func TestCollectExtraMalformed(t *testing.T) {
	manifestPath := filepath.Join(t.TempDir(), "extra.json")
	if err := os.WriteFile(manifestPath, []byte(`{"urls": `), 0644); err != nil {
		t.Fatal(err)
	}

	if err := collectExtra(manifestPath, t.TempDir()); err == nil {
		t.Fatal("expected error for malformed manifest")
	}
}

// Quotes a path for embedding in a JSON literal.
func jsonString(s string) string {
	return `"` + s + `"`
}
