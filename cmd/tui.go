package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/camino/internal/config"
	"github.com/ziadkadry99/camino/internal/terminal"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Read the documents in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, sh, err := setup()
		if err != nil {
			return err
		}
		style := cfg.Terminal.Style
		if s, _ := cmd.Flags().GetString("style"); s != "" {
			style = config.TerminalStyle(s)
		}
		return terminal.Run(sh, string(style))
	},
}

func init() {
	tuiCmd.Flags().String("style", "", "markdown style: auto, dark, light, dracula, notty or ascii")
	rootCmd.AddCommand(tuiCmd)
}
