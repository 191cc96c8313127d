package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/imichael2e2/wdc/internal/archive"
	"github.com/imichael2e2/wdc/internal/browser"
	"github.com/imichael2e2/wdc/internal/config"
	"github.com/imichael2e2/wdc/internal/fetch"
	"github.com/imichael2e2/wdc/internal/health"
	"github.com/imichael2e2/wdc/internal/output"
	"github.com/imichael2e2/wdc/internal/proc"
	"github.com/imichael2e2/wdc/internal/release"
)

var waitReady bool

const readyTimeout = 10 * time.Second

func addWaitFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&waitReady, "wait", false, "wait until the driver accepts TCP connections")
}

// prepare runs the full pipeline for each named driver in order, failing
// fast on the first error.
func prepare(ctx context.Context, cfg *config.Config, names ...string) error {
	if err := os.MkdirAll(cfg.WorkDir, 0755); err != nil {
		return fmt.Errorf("creating work dir: %w", err)
	}

	reg := proc.NewRegistry(cfg.WorkDir)
	launcher := proc.NewLauncher(cfg.WorkDir, reg)
	fetcher := fetch.New(nil)

	for _, name := range names {
		drv, ok := release.Lookup(name)
		if !ok {
			return fmt.Errorf("unknown driver %q", name)
		}
		if err := prepareDriver(ctx, cfg, fetcher, launcher, drv); err != nil {
			return fmt.Errorf("%s: %w", drv.Binary, err)
		}
	}
	return nil
}

func prepareDriver(ctx context.Context, cfg *config.Config, fetcher *fetch.Client, launcher *proc.Launcher, drv release.Driver) error {
	over := cfg.Driver(drv.Name)

	var version string
	if drv.Name == release.Chrome.Name {
		version = browser.DetectChromeVersion(ctx)
		if version != "" {
			output.Info("detected %s", version)
		}
	}

	url := over.URL
	if url == "" {
		url = release.ResolveURL(drv.Name, version)
	}

	binPath := over.Binary
	if binPath == "" {
		binPath = drv.Binary
	}
	if !filepath.IsAbs(binPath) {
		binPath = filepath.Join(cfg.WorkDir, binPath)
	}
	archivePath := filepath.Join(cfg.WorkDir, drv.Archive)

	downloaded, err := fetcher.Ensure(ctx, url, archivePath, binPath)
	if err != nil {
		return err
	}
	if downloaded {
		output.Info("downloaded %s", archivePath)
		if err := archive.Extract(archivePath, cfg.WorkDir); err != nil {
			return fmt.Errorf("extracting %s: %w", archivePath, err)
		}
		output.Info("extracted %s", drv.Binary)
	} else {
		output.Info("%s already installed", drv.Binary)
	}

	port := over.Port
	if port == 0 {
		port = drv.Port
	}
	args := append(append([]string{}, drv.LogArgs...), over.Args...)

	rec, err := launcher.Start(drv.Name, binPath, args, port)
	if err != nil {
		return err
	}
	output.Success("%s running (pid %d, log %s)", drv.Binary, rec.PID, rec.LogPath)

	if waitReady {
		addr := fmt.Sprintf("127.0.0.1:%d", port)
		if err := health.WaitTCP(ctx, addr, readyTimeout); err != nil {
			return err
		}
		output.Success("%s ready on %s", drv.Binary, addr)
	}
	return nil
}
