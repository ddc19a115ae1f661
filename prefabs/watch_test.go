package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(0, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("name: scene\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if name != "scene" {
			t.Fatalf("event for %q, want %q", name, "scene")
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", path)
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(time.Second, t.TempDir())
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events should be closed")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	if _, err := NewWatcher(0, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWatcherDebouncesScene(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(time.Hour, dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "scene.yaml")
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("name: scene\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-w.Events:
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", path)
	}
	select {
	case name := <-w.Events:
		t.Fatalf("second event %q inside the debounce window", name)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestSceneName(t *testing.T) {
	cases := map[string]string{
		"default":               "default",
		"default.yaml":          "default",
		"prefabs/layers.yaml":   "layers",
		"/tmp/scenes/arena.yml": "arena",
	}
	for in, want := range cases {
		if got := SceneName(in); got != want {
			t.Fatalf("SceneName(%q) = %q, want %q", in, got, want)
		}
	}
}
