package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"quicklaunch/internal/discovery"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/selection"
)

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	Discovery  DiscoverySettings `toml:"discovery"`
	Selection  SelectionSettings `toml:"selection"`
	UISettings UISettings        `toml:"ui"`
}

// DiscoverySettings controls what the scanner picks up
type DiscoverySettings struct {
	BaseDirs   []string `toml:"base_dirs"`  // empty means platform defaults
	Extensions []string `toml:"extensions"` // empty means platform defaults
	Exclude    []string `toml:"exclude"`
}

// SelectionSettings controls the selection behaviour on query edits
type SelectionSettings struct {
	OnQueryChange string `toml:"on_query_change"` // "persist" or "reset"
}

// UISettings represents UI-related configuration
type UISettings struct {
	CloseOnLaunch bool   `toml:"close_on_launch"`
	MaxVisible    int    `toml:"max_visible"`
	Placeholder   string `toml:"placeholder"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns <user config dir>/quicklaunch/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "quicklaunch", "config.toml")
}

// NewConfigService creates a config service for path (DefaultPath when empty)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks values the decoder cannot
func (c *Config) Validate() error {
	if _, err := selection.ParsePolicy(c.Selection.OnQueryChange); err != nil {
		return err
	}
	if c.UISettings.MaxVisible <= 0 {
		return fmt.Errorf("ui.max_visible must be positive, got %d", c.UISettings.MaxVisible)
	}
	return nil
}

// Policy returns the parsed selection policy
func (c *Config) Policy() selection.Policy {
	p, err := selection.ParsePolicy(c.Selection.OnQueryChange)
	if err != nil {
		return selection.PolicyPersist
	}
	return p
}

// DiscoveryOptions resolves the discovery settings against platform defaults
func (c *Config) DiscoveryOptions() discovery.Options {
	opts := discovery.Options{
		BaseDirs:   c.Discovery.BaseDirs,
		Extensions: c.Discovery.Extensions,
		Exclude:    c.Discovery.Exclude,
	}
	if len(opts.BaseDirs) == 0 {
		opts.BaseDirs = discovery.DefaultBaseDirs()
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = discovery.DefaultExtensions()
	}
	return opts
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Discovery: DiscoverySettings{
			BaseDirs:   []string{},
			Extensions: []string{},
			Exclude:    append([]string(nil), discovery.DefaultExclude...),
		},
		Selection: SelectionSettings{
			OnQueryChange: string(selection.PolicyPersist),
		},
		UISettings: UISettings{
			CloseOnLaunch: true,
			MaxVisible:    10,
			Placeholder:   "> search",
		},
	}
}
