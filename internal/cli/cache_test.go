package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCachePath(t *testing.T) {
	dir := isolate(t)

	out, err := runCLI(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if want := filepath.Join(dir, "cache", appName); strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}

	cfg := writeScene(t, dir, "config.toml", "[cache]\ndir = \"/tmp/elsewhere\"\n")
	out, err = runCLI(t, "--config", cfg, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if strings.TrimSpace(out) != "/tmp/elsewhere" {
		t.Errorf("configured cache path = %q", out)
	}
}

func TestCacheClear(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir, "scene.json", scene)
	cacheRoot := filepath.Join(dir, "cache", appName)

	if _, err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("clear of a missing cache: %v", err)
	}

	if _, err := runCLI(t, "build", input); err != nil {
		t.Fatalf("build: %v", err)
	}
	if n := countFiles(t, cacheRoot); n == 0 {
		t.Fatal("build stored nothing in the cache")
	}

	if _, err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n := countFiles(t, cacheRoot); n != 0 {
		t.Errorf("%d files left after clear", n)
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			n++
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return n
}
