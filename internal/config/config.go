package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PageSize int
	Accent   string
	Sort     string
}

// Load reads configuration from file and env. Env var overrides use prefix
// BOOKBROWSER_. Keys are single words so tagless Unmarshal resolves them.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "bookbrowser", "books.db"))
	v.SetDefault("ui.pagesize", 50)
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.sort", "title")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BOOKBROWSER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bookbrowser"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BOOKBROWSER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.PageSize < 1 {
		c.UI.PageSize = 50
	}
	return c, nil
}
