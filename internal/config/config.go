package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceLink/pkg/jlink"
)

// DefaultCore is used when neither the config file nor a flag names one.
const DefaultCore = "lpc824"

// Config stores persistent CLI settings.
type Config struct {
	Core  string      `yaml:"core"`
	JLink JLinkConfig `yaml:"jlink"`
}

// JLinkConfig locates and bounds the commander executable.
type JLinkConfig struct {
	Executable string        `yaml:"executable"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Core: DefaultCore,
		JLink: JLinkConfig{
			Executable: jlink.DefaultExecutable,
			Timeout:    jlink.DefaultTimeout,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	// Windows: %APPDATA%\OpenTraceLink
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "OpenTraceLink", "config.yaml"), nil
	}
	// Linux/macOS: $XDG_CONFIG_HOME/opentracelink or ~/.config/opentracelink
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "opentracelink", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "opentracelink", "config.yaml"), nil
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.JLink.Timeout < 0 {
		return nil, fmt.Errorf("config %s: jlink.timeout must not be negative", path)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
