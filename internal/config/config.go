package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Git    GitConfig    `toml:"git"`
	Tasks  TasksConfig  `toml:"tasks"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

type GitConfig struct {
	Revision string `toml:"revision"`
	Base     string `toml:"base"`
	Limit    int    `toml:"limit"`
}

type TasksConfig struct {
	// URLTemplate turns a task id into a link, e.g. "https://tracker.example.com/task/%d"
	URLTemplate string `toml:"url_template"`
}

func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  true,
		},
		Git: GitConfig{
			Revision: "HEAD",
			Limit:    50,
		},
	}
}

// Path returns the default config file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "attmsg.toml"), nil
}

// Load reads the config from the default location, writing defaults if the file is missing
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), nil
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			_ = cfg.SaveTo(path) // Best effort save
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads the config at path. Missing keys keep their default values.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be expressed in the TOML schema
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid output.format %q (want text, json or yaml)", c.Output.Format)
	}

	if c.Git.Limit < 0 {
		return fmt.Errorf("invalid git.limit %d", c.Git.Limit)
	}

	if c.Tasks.URLTemplate != "" && strings.Count(c.Tasks.URLTemplate, "%d") != 1 {
		return fmt.Errorf("invalid tasks.url_template %q: must contain exactly one %%d", c.Tasks.URLTemplate)
	}

	return nil
}

// Save writes the config to the default location
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path
func (c *Config) SaveTo(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// TOML returns the config encoded as TOML
func (c *Config) TOML() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TaskURL returns the tracker link for a task id ("" if no template is configured)
func (c *Config) TaskURL(id int) string {
	if c.Tasks.URLTemplate == "" {
		return ""
	}
	return fmt.Sprintf(c.Tasks.URLTemplate, id)
}
