package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "CAMINO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (CAMINO_*). A double underscore separates
// nested keys: CAMINO_WINDOW__PORT -> window.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps CAMINO_STYLE__HEADING_COLOR to style.heading_color.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validTerminalStyles is the set of recognized terminal style values.
var validTerminalStyles = map[TerminalStyle]bool{
	TerminalAuto:    true,
	TerminalDark:    true,
	TerminalLight:   true,
	TerminalDracula: true,
	TerminalNoTTY:   true,
	TerminalASCII:   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Window.Port < 0 || c.Window.Port > 65535 {
		return fmt.Errorf("window.port %d out of range", c.Window.Port)
	}
	if c.CodeStyle == "" {
		return fmt.Errorf("code_style is required")
	}
	if c.Terminal.Style != "" && !validTerminalStyles[c.Terminal.Style] {
		return fmt.Errorf("invalid terminal.style %q: must be one of auto, dark, light, dracula, notty, ascii", c.Terminal.Style)
	}
	if c.ResourcesDir != "" {
		info, err := os.Stat(c.ResourcesDir)
		if err != nil {
			return fmt.Errorf("resources_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("resources_dir %s is not a directory", c.ResourcesDir)
		}
	}
	return nil
}
