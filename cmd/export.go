package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/camino/internal/progress"
	"github.com/ziadkadry99/camino/internal/site"
	"github.com/ziadkadry99/camino/internal/window"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the documents as a static window",
	Long: `Renders every document to <output>/<page>.html and writes an index.html
whose sidebar loads pages into the content frame. The result needs no server.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "site", "output directory")
	exportCmd.Flags().Bool("serve", false, "preview the export on a local HTTP server")
	exportCmd.Flags().Int("port", 8081, "port for the preview server")
	exportCmd.Flags().Bool("open", false, "open the preview in the default browser")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	exp := site.NewExporter(loader, outputDir, cfg.Title)
	exp.Width = cfg.Width
	exp.Height = cfg.Height
	exp.LabelPrefix = cfg.LabelPrefix
	exp.Reporter = progress.New("Exporting pages")

	count, err := exp.Generate()
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	fmt.Printf("Exported %d pages to %s\n", count, outputDir)

	if serve, _ := cmd.Flags().GetBool("serve"); !serve {
		return nil
	}
	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")

	ctx, stop := signalContext()
	defer stop()
	return site.Preview(ctx, outputDir, port, func(url string) {
		fmt.Printf("Previewing at %s (Ctrl+C to stop)\n", url)
		if open {
			if err := window.OpenBrowser(url + "/index.html"); err != nil {
				log.Printf("site: opening browser: %v", err)
			}
		}
	})
}
