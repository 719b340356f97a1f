// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/timeline/internal/logger"
	"github.com/bethropolis/timeline/internal/text"
	"github.com/bethropolis/timeline/internal/timeline"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`    // [logger] table
	Timeline  TimelineConfig  `toml:"timeline"`  // [timeline] table
	Clipboard ClipboardConfig `toml:"clipboard"` // [clipboard] table

	// Plugins maps plugin name to its own table, e.g. [plugins.autosave].
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// TimelineConfig holds timeline settings.
type TimelineConfig struct {
	Unit       string `toml:"unit"`        // "rune" or "grapheme"
	Strict     bool   `toml:"strict"`      // Validate carets instead of clamping
	MaxRecords int    `toml:"max_records"` // 0 keeps every record
	Chain      string `toml:"chain"`       // Default chain predicate: "blank" or "continuity"
}

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	System bool `toml:"system"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Timeline: TimelineConfig{
			Unit:       DefaultUnit,
			Strict:     DefaultStrict,
			MaxRecords: DefaultMaxRecords,
			Chain:      DefaultChain,
		},
		Clipboard: ClipboardConfig{
			System: SystemClipboard,
		},
		Plugins: make(map[string]map[string]interface{}),
	}
}

// loadFromFile decodes the TOML file at filePath over cfg.
// A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if _, err := text.ParseUnit(c.Timeline.Unit); err != nil {
		logger.Warnf("Config: %v, using %q", err, defaults.Timeline.Unit)
		c.Timeline.Unit = defaults.Timeline.Unit
	}
	if _, err := timeline.PredicateByName(c.Timeline.Chain); err != nil {
		logger.Warnf("Config: %v, using %q", err, defaults.Timeline.Chain)
		c.Timeline.Chain = defaults.Timeline.Chain
	}
	if c.Timeline.MaxRecords < 0 {
		c.Timeline.MaxRecords = defaults.Timeline.MaxRecords
	}
}

// Load builds a configuration from defaults, the file at configFilePath (or
// the default location when empty) and flag overrides, then validates it.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if configDir, err := os.UserConfigDir(); err == nil {
			effectivePath = filepath.Join(configDir, AppName, DefaultConfigFileName)
		}
	}

	var err error
	if effectivePath != "" {
		err = loadFromFile(effectivePath, cfg)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// Unit returns the configured character unit.
func (c *Config) Unit() text.Unit {
	u, _ := text.ParseUnit(c.Timeline.Unit) // validated on load
	return u
}

// Chain returns the configured default chain predicate.
func (c *Config) Chain() timeline.Predicate {
	p, err := timeline.PredicateByName(c.Timeline.Chain)
	if err != nil {
		return timeline.SplitOnBlankSpace
	}
	return p
}

// TimelineOptions converts the [timeline] table into timeline options.
func (c *Config) TimelineOptions() []timeline.Option {
	return []timeline.Option{
		timeline.WithUnit(c.Unit()),
		timeline.WithStrict(c.Timeline.Strict),
		timeline.WithMaxRecords(c.Timeline.MaxRecords),
	}
}

// PluginValue returns a value from a plugin's configuration table.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	table, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}
