package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ziadkadry99/camino/internal/config"
	"github.com/ziadkadry99/camino/internal/pages"
	"github.com/ziadkadry99/camino/internal/resources"
	"github.com/ziadkadry99/camino/internal/shell"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `camino init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLoader returns a loader over resources_dir, or over the bundled
// documents when it is unset.
func newLoader(cfg *config.Config) (*pages.Loader, error) {
	opts := []pages.Option{
		pages.WithStyle(pages.Style{
			FontFamily:       cfg.Style.FontFamily,
			LineHeight:       cfg.Style.LineHeight,
			Padding:          cfg.Style.Padding,
			HeadingColor:     cfg.Style.HeadingColor,
			ParagraphSpacing: cfg.Style.ParagraphSpacing,
		}),
		pages.WithCodeStyle(cfg.CodeStyle),
	}
	if cfg.ResourcesDir == "" {
		return pages.NewLoader(resources.Documents(), resources.Root, opts...), nil
	}
	return pages.NewDirLoader(cfg.ResourcesDir, opts...)
}

func newShell(cfg *config.Config, loader shell.PageLoader) (*shell.Shell, error) {
	return shell.New(loader, shell.Options{
		Title:       cfg.Title,
		Width:       cfg.Width,
		Height:      cfg.Height,
		LabelPrefix: cfg.LabelPrefix,
		DefaultPage: cfg.DefaultPage,
		Verbose:     verbose,
	})
}

// setup loads the config and builds the loader and shell from it.
func setup() (*config.Config, *pages.Loader, *shell.Shell, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	sh, err := newShell(cfg, loader)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, loader, sh, nil
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
