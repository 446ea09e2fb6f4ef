package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/camino/internal/window"
)

var (
	windowPort int
	windowOpen bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the reader window in the browser",
	Long: `Serves the reader window on 127.0.0.1. The sidebar lists one button per
document; pressing a button renders that document into the content area.`,
	RunE: runWindow,
}

func init() {
	addWindowFlags(windowCmd)
	rootCmd.AddCommand(windowCmd)
}

func addWindowFlags(c *cobra.Command) {
	c.Flags().IntVar(&windowPort, "port", 0, "port for the window (overrides window.port)")
	c.Flags().BoolVar(&windowOpen, "open", false, "open the window in the default browser")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, loader, sh, err := setup()
	if err != nil {
		return err
	}

	wcfg := window.Config{Port: cfg.Window.Port, AllowAll: cfg.Window.AllowAll}
	if cmd.Flags().Changed("port") {
		wcfg.Port = windowPort
	}
	srv := window.New(wcfg, sh, loader)
	if err := srv.Listen(); err != nil {
		return err
	}

	url := srv.URL()
	fmt.Printf("%s: %s\n", sh.Title(), url)
	fmt.Println("Press Ctrl+C to stop.")
	if windowOpen || cfg.Window.Open {
		go func() {
			if err := window.OpenBrowser(url); err != nil {
				log.Printf("window: opening browser: %v", err)
			}
		}()
	}

	ctx, stop := signalContext()
	defer stop()
	return srv.Serve(ctx)
}
