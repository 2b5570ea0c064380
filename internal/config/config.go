package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

const appName = "newsmatch"

type StateConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type ProfileConfig struct {
	UserID    string `yaml:"user_id"`
	ShareBase string `yaml:"share_base"`
}

type Config struct {
	Feed       string        `yaml:"feed"`
	StackDepth int           `yaml:"stack_depth,omitempty"`
	LogLevel   string        `yaml:"log_level"`
	LogFile    string        `yaml:"log_file"`
	State      StateConfig   `yaml:"state"`
	Profile    ProfileConfig `yaml:"profile"`
}

// GetStackDepth returns the number of stacked cards, defaulting to 3.
func (c *Config) GetStackDepth() int {
	if c.StackDepth <= 0 {
		return 3
	}
	return c.StackDepth
}

// UserID returns the profile user id. NEWSMATCH_USER overrides the config.
func (c *Config) UserID() string {
	if env := os.Getenv("NEWSMATCH_USER"); env != "" {
		return env
	}
	return c.Profile.UserID
}

func (c *Config) ShareBase() string {
	if c.Profile.ShareBase == "" {
		return "https://newsmatch.jp"
	}
	return c.Profile.ShareBase
}

func (c *Config) StateBackend() string {
	if c.State.Backend == "" {
		return "sqlite"
	}
	return strings.ToLower(c.State.Backend)
}

// StatePath returns the state file, picking an extension that matches the backend.
func (c *Config) StatePath() string {
	if c.State.Path != "" {
		return expandHome(c.State.Path)
	}
	name := "state.db"
	if c.StateBackend() == "bbolt" {
		name = "state.bolt"
	}
	return filepath.Join(xdg.StateHome, appName, name)
}

func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return expandHome(c.LogFile)
	}
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// FeedPath returns the configured article file, or "" for the bundled set.
func (c *Config) FeedPath() string {
	return expandHome(c.Feed)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Decode over the defaults so omitted keys keep their default values.
	cfg := *defaults
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	validBackends := map[string]bool{"": true, "sqlite": true, "bbolt": true, "memory": true, "none": true}
	if !validBackends[strings.ToLower(cfg.State.Backend)] {
		return fmt.Errorf("state.backend: unknown backend %q (valid: sqlite, bbolt, memory)", cfg.State.Backend)
	}

	if cfg.StackDepth < 0 {
		return fmt.Errorf("stack_depth must not be negative, got %d", cfg.StackDepth)
	}

	if cfg.Feed != "" {
		switch strings.ToLower(filepath.Ext(cfg.Feed)) {
		case ".json", ".xml", ".rss", ".atom":
		default:
			return fmt.Errorf("feed %q: unsupported file type (valid: .json, .xml, .rss, .atom)", cfg.Feed)
		}
	}

	if cfg.Profile.ShareBase != "" {
		u, err := url.Parse(cfg.Profile.ShareBase)
		if err != nil {
			return fmt.Errorf("profile.share_base: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("profile.share_base: url scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}
