package main

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Prepare geckodriver and chromedriver",
	Long:  "Download, install, and launch both drivers in sequence. A failure in either driver fails the whole command.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return prepare(cmd.Context(), cfg, "gecko", "chrome")
	},
}

func init() {
	addWaitFlag(allCmd)
	rootCmd.AddCommand(allCmd)
}
