// Package config provides configuration management for infinitty with
// Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for the shell.
type Config struct {
	Surfaces SurfacesConfig `mapstructure:"surfaces" yaml:"surfaces"`
	Session  SessionConfig  `mapstructure:"session" yaml:"session"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`

	// Headless swaps the WebKitGTK surface host for the in-process
	// JavaScript host. Used by automation runs and CI.
	Headless bool `mapstructure:"headless" yaml:"headless"`
}

// SurfacesConfig holds embedded-surface configuration.
type SurfacesConfig struct {
	// UserAgent is the masquerading UA applied to every surface.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// MaxScriptChars bounds the size of injected script payloads.
	MaxScriptChars int `mapstructure:"max_script_chars" yaml:"max_script_chars"`
}

// SessionConfig holds session persistence configuration.
type SessionConfig struct {
	Path    string `mapstructure:"path" yaml:"path"`
	Restore bool   `mapstructure:"restore" yaml:"restore"`
}

// WindowConfig holds host window configuration.
type WindowConfig struct {
	Width     int    `mapstructure:"width" yaml:"width"`
	Height    int    `mapstructure:"height" yaml:"height"`
	MinWidth  int    `mapstructure:"min_width" yaml:"min_width"`
	MinHeight int    `mapstructure:"min_height" yaml:"min_height"`
	Effect    string `mapstructure:"effect" yaml:"effect"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Manager loads and watches the configuration file.
type Manager struct {
	mu        sync.RWMutex
	viper     *viper.Viper
	config    *Config
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the given config
// directory. An empty dir resolves to the default location.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		var err error
		dir, err = DefaultConfigDir()
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("INFINITTY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	m := &Manager{viper: v}
	m.setDefaults()
	return m, nil
}

// DefaultConfigDir returns the XDG config directory for the shell.
func DefaultConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "infinitty"), nil
}

// Load reads the configuration file. A missing file is not an error; the
// defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := new(Config)
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	m.config = cfg
	return nil
}

// Get returns the current configuration. Load must have been called.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Watch starts watching the config file and reloads on change.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()
		cfg := new(Config)
		if err := m.viper.Unmarshal(cfg); err != nil {
			m.mu.Unlock()
			return
		}
		m.config = cfg
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, cb := range callbacks {
			cb(cfg)
		}
	})

	m.watching = true
}

// OnConfigChange registers a callback invoked after each successful reload.
func (m *Manager) OnConfigChange(cb func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// WriteDefault writes a default config file if none exists yet and returns
// its path.
func (m *Manager) WriteDefault(dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = DefaultConfigDir()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write default config: %w", err)
	}
	return path, nil
}
