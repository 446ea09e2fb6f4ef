package config

// TerminalStyle names a glamour style used by the terminal surface.
type TerminalStyle string

const (
	TerminalAuto    TerminalStyle = "auto"
	TerminalDark    TerminalStyle = "dark"
	TerminalLight   TerminalStyle = "light"
	TerminalDracula TerminalStyle = "dracula"
	TerminalNoTTY   TerminalStyle = "notty"
	TerminalASCII   TerminalStyle = "ascii"
)

// Config is the top-level camino configuration, corresponding to .camino.yml.
type Config struct {
	ResourcesDir string         `yaml:"resources_dir" koanf:"resources_dir"`
	Title        string         `yaml:"title" koanf:"title"`
	Width        int            `yaml:"width" koanf:"width"`
	Height       int            `yaml:"height" koanf:"height"`
	DefaultPage  string         `yaml:"default_page" koanf:"default_page"`
	LabelPrefix  string         `yaml:"label_prefix" koanf:"label_prefix"`
	CodeStyle    string         `yaml:"code_style" koanf:"code_style"`
	Style        StyleConfig    `yaml:"style" koanf:"style"`
	Window       WindowConfig   `yaml:"window" koanf:"window"`
	Terminal     TerminalConfig `yaml:"terminal" koanf:"terminal"`
}

// StyleConfig holds the values injected into the page style template.
type StyleConfig struct {
	FontFamily       string `yaml:"font_family" koanf:"font_family"`
	LineHeight       string `yaml:"line_height" koanf:"line_height"`
	Padding          string `yaml:"padding" koanf:"padding"`
	HeadingColor     string `yaml:"heading_color" koanf:"heading_color"`
	ParagraphSpacing string `yaml:"paragraph_spacing" koanf:"paragraph_spacing"`
}

// WindowConfig holds settings for the HTTP window surface.
type WindowConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	Open     bool `yaml:"open" koanf:"open"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}

// TerminalConfig holds settings for the terminal surface.
type TerminalConfig struct {
	Style TerminalStyle `yaml:"style" koanf:"style"`
}
