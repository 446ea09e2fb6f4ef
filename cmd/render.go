package cmd

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/camino/internal/shell"
)

var renderCmd = &cobra.Command{
	Use:   "render [page]",
	Short: "Render one document to HTML",
	Long: `Renders a document exactly as the content area would show it. Without an
argument, a page is picked interactively. A missing document renders the
"File not found" page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	renderCmd.Flags().Bool("text", false, "print the Markdown source (or fallback message) instead of HTML")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, loader, sh, err := setup()
	if err != nil {
		return err
	}

	var id string
	if len(args) == 1 {
		id = args[0]
	} else {
		id, err = pickEntry(sh.Entries())
		if err != nil {
			return err
		}
	}

	page := loader.Load(id)
	out := page.HTML()
	if asText, _ := cmd.Flags().GetBool("text"); asText {
		out = page.Text() + "\n"
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if verbose {
		fmt.Printf("Rendered %s (%s) to %s\n", id, shell.Label(id, cfg.LabelPrefix), path)
	}
	return nil
}

// pickEntry asks the user to choose one of the sidebar entries.
func pickEntry(entries []shell.Entry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no documents to render")
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	prompt := promptui.Select{
		Label: "Page",
		Items: labels,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("page selection: %w", err)
	}
	return entries[idx].ID, nil
}
