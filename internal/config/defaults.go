package config

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "Camino: Who was St James?"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:       DefaultTitle,
		Width:       800,
		Height:      600,
		LabelPrefix: "page",
		CodeStyle:   "github",
		Style: StyleConfig{
			FontFamily:       "Arial, sans-serif",
			LineHeight:       "1.5",
			Padding:          "20px",
			HeadingColor:     "#333",
			ParagraphSpacing: "15px",
		},
		Window: WindowConfig{
			Port: 8080,
		},
		Terminal: TerminalConfig{
			Style: TerminalAuto,
		},
	}
}
