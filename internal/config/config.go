package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"combobox/internal/eventbus"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file looked up when no path is given
const FileName = "combobox.toml"

// Config represents one widget instance and the demo around it
type Config struct {
	Version     int    `toml:"version"`
	Label       string `toml:"label,omitempty"`
	Placeholder string `toml:"placeholder,omitempty"`
	Searchable  bool   `toml:"searchable"`
	Error       string `toml:"error,omitempty"`
	ErrorColor  string `toml:"error_color,omitempty"`
	Width       int    `toml:"width,omitempty"`

	// Value is the index of the controlled value, if any
	Value *int `toml:"value,omitempty"`
	// LastSelected is the index of the option chosen in the previous session
	LastSelected *int `toml:"last_selected,omitempty"`

	UISettings UISettings     `toml:"ui"`
	Options    []OptionConfig `toml:"options"`

	// Styles and Classes are either false or a table of per-key overrides
	// and are decoded by the styling package
	Styles  any `toml:"styles,omitempty"`
	Classes any `toml:"classes,omitempty"`
	Sheet   any `toml:"sheet,omitempty"`
}

// UISettings represents demo-related configuration
type UISettings struct {
	Mouse        bool   `toml:"mouse"`
	SaveOnSelect bool   `toml:"save_on_select"`
	SearchHint   string `toml:"search_hint,omitempty"`
}

// OptionConfig is one entry of the options list. A missing keyword means the
// option never matches a search
type OptionConfig struct {
	Label   string  `toml:"label"`
	Value   any     `toml:"value,omitempty"`
	Keyword *string `toml:"keyword,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "combobox", FileName)
}

// NewConfigService creates a config service for path; "" uses DefaultPath
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that publishes load and
// save events
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to
// DefaultConfig when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			Options: len(cfg.Options),
		})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads and validates configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes a TOML document and checks that it describes a usable widget
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config at line %d, column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := cfg.Widget(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration written by `combobox init` and used
// when no file exists
func DefaultConfig() *Config {
	keyword := func(s string) *string { return &s }
	return &Config{
		Version:    1,
		Label:      "Colour",
		Searchable: true,
		UISettings: UISettings{
			Mouse:        true,
			SaveOnSelect: true,
			SearchHint:   "Search",
		},
		Options: []OptionConfig{
			{Label: "Red", Value: "red", Keyword: keyword("red")},
			{Label: "Green", Value: "green", Keyword: keyword("green")},
			{Label: "Blue", Value: "blue", Keyword: keyword("blue")},
			{Label: "Black", Value: "black", Keyword: keyword("black")},
			{Label: "Purple", Value: "purple", Keyword: keyword("purple violet")},
		},
	}
}
