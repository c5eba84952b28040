package config

// UIConfig holds console presentation settings.
type UIConfig struct {
	// Locale selects the message catalog (en-US, uk-UA). Unknown locales fall
	// back to en-US.
	Locale string `yaml:"locale" env:"GRIDDEMO_LOCALE"`

	// Color styles headings with the terminal theme.
	Color bool `yaml:"color" env:"GRIDDEMO_COLOR"`
}

// DefaultUIConfig returns the UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Locale: "en-US",
		Color:  false,
	}
}
