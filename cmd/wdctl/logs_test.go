package main

import (
	"path/filepath"
	"testing"

	"github.com/imichael2e2/wdc/internal/config"
	"github.com/imichael2e2/wdc/internal/proc"
	"github.com/imichael2e2/wdc/internal/release"
)

func TestDriverLogPathPrefersRecordedPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{WorkDir: dir}
	reg := proc.NewRegistry(dir)

	// A binary override changes where the launcher writes the log; the
	// recorded path is the source of truth.
	recorded := filepath.Join(dir, "gecko-nightly.log")
	if err := reg.Set("gecko", proc.Record{PID: 1, Command: "/opt/gecko-nightly", LogPath: recorded}); err != nil {
		t.Fatal(err)
	}

	if got := driverLogPath(cfg, reg, release.Gecko); got != recorded {
		t.Errorf("log path = %q, want recorded %q", got, recorded)
	}
}

func TestDriverLogPathDefaultsWhenUnrecorded(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{WorkDir: dir}
	reg := proc.NewRegistry(dir)

	want := filepath.Join(dir, "geckodriver.log")
	if got := driverLogPath(cfg, reg, release.Gecko); got != want {
		t.Errorf("log path = %q, want default %q", got, want)
	}
}
