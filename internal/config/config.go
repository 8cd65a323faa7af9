package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// DefaultPath is used when --config-path is not given.
const DefaultPath = "config.toml"

// Config holds the complete application configuration
type Config struct {
	Common    CommonConfig `mapstructure:"common" toml:"common"`
	Log       LogConfig    `mapstructure:"log" toml:"log"`
	// Bookmarks keep document order and alias case; see readBookmarks.
	Bookmarks Bookmarks    `mapstructure:"-" toml:"-"`
}

// CommonConfig holds browser settings
type CommonConfig struct {
	Editor       string   `mapstructure:"editor" toml:"editor"`
	ShowHidden   bool     `mapstructure:"show_hidden" toml:"show_hidden"`
	HidePatterns []string `mapstructure:"hide_patterns" toml:"hide_patterns"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file,omitempty"`
}

// Load reads configuration with priority env > file > defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("STRANGER")
	_ = v.BindEnv("common.editor", "STRANGER_EDITOR")
	_ = v.BindEnv("log.level", "STRANGER_LOG_LEVEL")
	_ = v.BindEnv("log.file", "STRANGER_LOG_FILE")

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if data, err := os.ReadFile(path); err == nil {
		if cfg.Bookmarks, err = readBookmarks(data); err != nil {
			return nil, fmt.Errorf("failed to read bookmarks: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("common.editor", "nvim")
	v.SetDefault("common.show_hidden", false)
	v.SetDefault("common.hide_patterns", []string{})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// Validate rejects duplicate bookmark aliases and malformed hide patterns.
func Validate(cfg *Config) error {
	seen := make(map[string]struct{}, len(cfg.Bookmarks))
	for _, b := range cfg.Bookmarks {
		if b.Alias == "" {
			return fmt.Errorf("bookmark for %q has no alias", b.Path)
		}
		if _, dup := seen[b.Alias]; dup {
			return fmt.Errorf("duplicate bookmark alias %q", b.Alias)
		}
		seen[b.Alias] = struct{}{}
	}
	if _, err := CompileHidePatterns(cfg.Common.HidePatterns); err != nil {
		return err
	}
	return nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if data, err = appendBookmarks(data, cfg.Bookmarks); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Store ties a loaded config to the file it persists to.
type Store struct {
	Path   string
	Config *Config
}

// SaveBookmarks replaces the bookmark table and writes the whole config.
func (s *Store) SaveBookmarks(bookmarks Bookmarks) error {
	s.Config.Bookmarks = bookmarks.Clone()
	return Save(s.Path, s.Config)
}
