package main

import (
	"github.com/spf13/cobra"
)

var chromeCmd = &cobra.Command{
	Use:   "chrome",
	Short: "Prepare chromedriver only",
	Long:  "Detect the installed Chrome version, download the matching chromedriver if needed, and launch it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return prepare(cmd.Context(), cfg, "chrome")
	},
}

func init() {
	addWaitFlag(chromeCmd)
	rootCmd.AddCommand(chromeCmd)
}
