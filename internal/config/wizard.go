package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to camino! Let's configure your reader.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Document source.
	sourcePrompt := promptui.Select{
		Label: "Where are the Markdown documents?",
		Items: []string{
			"bundled   (documents shipped with camino)",
			"directory (a folder of .md files on disk)",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	if sourceIdx == 1 {
		dirPrompt := promptui.Prompt{
			Label:    "Resources directory",
			Default:  "resources/md",
			Validate: validateDir,
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("resources directory: %w", err)
		}
		cfg.ResourcesDir = strings.TrimSpace(dir)
	}

	// 2. Window title.
	titlePrompt := promptui.Prompt{
		Label:   "Window title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 3. Page shown at startup.
	defaultPrompt := promptui.Prompt{
		Label:   "Page shown at startup (blank for none)",
		Default: "",
	}
	defaultPage, err := defaultPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default page: %w", err)
	}
	cfg.DefaultPage = strings.TrimSpace(defaultPage)

	// 4. Window port.
	portPrompt := promptui.Prompt{
		Label:    "Window port",
		Default:  strconv.Itoa(cfg.Window.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Window.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateDir(s string) error {
	info, err := os.Stat(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
