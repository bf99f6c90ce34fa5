package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestClearCacheRemovesCacheDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cache path comes from LOCALAPPDATA on windows")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := defaultCachePath()
	if !strings.HasPrefix(dir, home) {
		t.Fatalf("cache path %s not under test home", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "stars.db"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := ClearCache(); err != nil {
		t.Fatalf("ClearCache: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("cache directory should be removed")
	}

	// Clearing an already-missing cache is not an error.
	if err := ClearCache(); err != nil {
		t.Errorf("second ClearCache: %v", err)
	}
}

func TestCachePathMatchesDefault(t *testing.T) {
	if CachePath() != defaultCachePath() {
		t.Error("CachePath must expose the default cache directory")
	}
}
