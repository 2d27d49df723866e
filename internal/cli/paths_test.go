package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestCLICacheDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name       string
		xdg        string
		configured string
		want       string
	}{
		{"home fallback", "", "", filepath.Join(home, ".cache", appName)},
		{"xdg", "/tmp/custom-cache", "", filepath.Join("/tmp/custom-cache", appName)},
		{"config wins", "/tmp/custom-cache", "/srv/lottiedoc-cache", "/srv/lottiedoc-cache"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CACHE_HOME", tt.xdg)

			c := New(os.Stderr, log.InfoLevel)
			c.cfg.Cache.Dir = tt.configured

			got, err := c.cacheDir()
			if err != nil {
				t.Fatalf("cacheDir() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("cacheDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
