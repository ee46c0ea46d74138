package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	store := NewFileManifestStore(t.TempDir())
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 0 {
		t.Fatalf("manifests = %d, want 0", len(manifests))
	}
}

func TestLoadResolvesRelativeBinaries(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := `[
  {
    "name": "chime",
    "version": "1.0.0",
    "binary": "chime/chime",
    "sha256": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "enabled": true,
    "capabilities": ["ambience", "alert"]
  }
]`
	if err := os.WriteFile(filepath.Join(dir, "plugins.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write manifests: %v", err)
	}

	store := NewFileManifestStore(dir)
	manifests, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(manifests) != 1 {
		t.Fatalf("manifests = %d", len(manifests))
	}
	want := filepath.Join(dir, "chime", "chime")
	if manifests[0].Binary != want {
		t.Fatalf("binary = %q, want %q", manifests[0].Binary, want)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := `[{"name": "chime", "surprise": true}]`
	if err := os.WriteFile(filepath.Join(dir, "plugins.json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write manifests: %v", err)
	}

	store := NewFileManifestStore(dir)
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("unknown field accepted")
	}
}
