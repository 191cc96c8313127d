package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	workDir    string
)

var rootCmd = &cobra.Command{
	Use:           "wdctl",
	Short:         "Prepare local WebDriver servers for test runs",
	Long:          "wdctl downloads, installs, and launches geckodriver and chromedriver so an external test runner can connect to them on their default ports.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&workDir, "workdir", "", "working directory for archives, binaries, and logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
