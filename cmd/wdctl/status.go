package main

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/imichael2e2/wdc/internal/output"
	"github.com/imichael2e2/wdc/internal/proc"
	"github.com/imichael2e2/wdc/internal/release"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show driver process status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		reg := proc.NewRegistry(cfg.WorkDir)
		records, err := reg.Load()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, drv := range release.Known() {
			rec, ok := records[drv.Name]
			if !ok {
				rows = append(rows, []string{drv.Binary, "-", "stopped", "-", "-", "-"})
				continue
			}

			state := "running"
			if !rec.Alive() {
				state = "stale"
			}
			rows = append(rows, []string{
				drv.Binary,
				strconv.Itoa(rec.PID),
				state,
				strconv.Itoa(rec.Port),
				rec.Uptime(time.Now()).Truncate(time.Second).String(),
				rec.LogPath,
			})
		}

		output.Table([]string{"DRIVER", "PID", "STATE", "PORT", "UPTIME", "LOG"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
