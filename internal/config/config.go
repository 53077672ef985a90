package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StoreConfig selects where the catalog is persisted
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // "json", "bolt" or "memory"
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: "json",
			Path:    "books.json",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf", "shelf.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "shelf", "shelf.log")
	}
}

// DefaultConfigDir returns the directory searched for config.yaml
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "shelf")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "shelf")
	}
}

// LoadConfig loads configuration from file and environment.
// With an empty configFile, config.yaml is looked up in the default config
// directory and the working directory, and a missing file is fine.
// An explicit configFile must exist.
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	// Defaults make every key known to viper so env overrides reach Unmarshal
	v.SetDefault("store.backend", cfg.Store.Backend)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// SHELF_STORE_PATH, SHELF_LOGGING_LEVEL, ...
	v.SetEnvPrefix("SHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Store.Path = ExpandHome(cfg.Store.Path)
	cfg.Logging.File = ExpandHome(cfg.Logging.File)
	return cfg, nil
}

// SaveConfig writes cfg as YAML to path, creating the directory if needed
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("store.backend", cfg.Store.Backend)
	v.Set("store.path", cfg.Store.Path)
	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
