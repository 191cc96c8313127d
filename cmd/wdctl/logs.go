package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/imichael2e2/wdc/internal/config"
	"github.com/imichael2e2/wdc/internal/output"
	"github.com/imichael2e2/wdc/internal/proc"
	"github.com/imichael2e2/wdc/internal/release"
	"github.com/imichael2e2/wdc/internal/tail"
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs <gecko|chrome>",
	Short: "Show a driver's log output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, ok := release.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown driver %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logPath := driverLogPath(cfg, proc.NewRegistry(cfg.WorkDir), drv)
		lines, err := tail.LastLines(logPath, logsLines)
		if err != nil {
			return fmt.Errorf("no log for %s: %w", drv.Binary, err)
		}
		for _, line := range lines {
			output.Print("%s", line)
		}

		if !logsFollow {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return tail.Follow(ctx, logPath, os.Stdout)
	},
}

// driverLogPath prefers the path recorded at launch, which honors any
// configured binary override. Drivers never started fall back to the
// default log name in the work dir.
func driverLogPath(cfg *config.Config, reg *proc.Registry, drv release.Driver) string {
	if rec, ok, err := reg.Get(drv.Name); err == nil && ok && rec.LogPath != "" {
		return rec.LogPath
	}
	return filepath.Join(cfg.WorkDir, drv.Binary+".log")
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 20, "number of trailing lines to show")
	rootCmd.AddCommand(logsCmd)
}
