package config

import (
	"os"
	"path/filepath"
)

// ChromeUserAgent masquerades every embedded surface as desktop Chrome so
// third-party sites serve their full UI instead of an embedded-browser
// fallback. Constant across all surfaces.
const ChromeUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultMaxScriptChars bounds injected script payloads.
const DefaultMaxScriptChars = 100_000

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Surfaces: SurfacesConfig{
			UserAgent:      ChromeUserAgent,
			MaxScriptChars: DefaultMaxScriptChars,
		},
		Session: SessionConfig{
			Path:    defaultSessionPath(),
			Restore: true,
		},
		Window: WindowConfig{
			Width:     1200,
			Height:    800,
			MinWidth:  800,
			MinHeight: 600,
			Effect:    "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func defaultSessionPath() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "session.db"
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "infinitty", "session.db")
}

func (m *Manager) setDefaults() {
	d := Defaults()

	m.viper.SetDefault("surfaces.user_agent", d.Surfaces.UserAgent)
	m.viper.SetDefault("surfaces.max_script_chars", d.Surfaces.MaxScriptChars)

	m.viper.SetDefault("session.path", d.Session.Path)
	m.viper.SetDefault("session.restore", d.Session.Restore)

	m.viper.SetDefault("window.width", d.Window.Width)
	m.viper.SetDefault("window.height", d.Window.Height)
	m.viper.SetDefault("window.min_width", d.Window.MinWidth)
	m.viper.SetDefault("window.min_height", d.Window.MinHeight)
	m.viper.SetDefault("window.effect", d.Window.Effect)

	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)

	m.viper.SetDefault("headless", false)
}
