package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "camino",
	Short: "A small reader for the Camino de Santiago documents",
	Long: `Camino shows a fixed set of Markdown documents in a window with a
sidebar of page buttons. Selecting a page renders it into the content area.
Run without a subcommand to open the window.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".camino.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	addWindowFlags(rootCmd)
}
