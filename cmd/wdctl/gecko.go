package main

import (
	"github.com/spf13/cobra"
)

var geckoCmd = &cobra.Command{
	Use:   "gecko",
	Short: "Prepare geckodriver only",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return prepare(cmd.Context(), cfg, "gecko")
	},
}

func init() {
	addWaitFlag(geckoCmd)
	rootCmd.AddCommand(geckoCmd)
}
