package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"GRIDDEMO_LOG_LEVEL"`   // debug, info, warn, error
	Format     string          `yaml:"format" env:"GRIDDEMO_LOG_FORMAT"` // console, json
	DebugMode  bool            `yaml:"debug_mode"`                       // enables the per-category filter
	Categories map[string]bool `yaml:"categories,omitempty"`             // per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Without debug_mode every category logs at the configured level; with it,
// a category is enabled unless the categories map turns it off.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode || c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}
