package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imichael2e2/wdc/internal/config"
	"github.com/imichael2e2/wdc/internal/output"
	"github.com/imichael2e2/wdc/internal/proc"
	"github.com/imichael2e2/wdc/internal/release"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Stop all drivers and delete the working directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runReset(cfg)
	},
}

// runReset stops every recorded driver and deletes the work dir wholesale.
// Stops are best-effort; the completion message is gated on the delete.
func runReset(cfg *config.Config) error {
	reg := proc.NewRegistry(cfg.WorkDir)
	launcher := proc.NewLauncher(cfg.WorkDir, reg)
	for _, drv := range release.Known() {
		if err := launcher.Stop(drv.Name); err != nil {
			output.Warn("stopping %s: %v", drv.Binary, err)
		}
	}

	if err := os.RemoveAll(cfg.WorkDir); err != nil {
		return fmt.Errorf("removing %s: %w", cfg.WorkDir, err)
	}
	output.Success("reset complete: removed %s", cfg.WorkDir)
	return nil
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
