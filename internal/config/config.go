// Package config provides thread-safe configuration management for the
// filemodes tool. Values come from an optional KEY=VALUE file, from
// FILEMODES_-prefixed environment variables and from the Defaults table,
// in that order of precedence (environment wins over the file).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Config manages filemodes configuration with thread-safe operations
type Config struct {
	filePath string
	v        *viper.Viper
	loaded   bool // Track if configuration has been loaded from disk
	mu       sync.RWMutex
}

// ensureLoaded loads configuration data from disk once before read operations.
// This method must only be called while holding c.mu.Lock.
func (c *Config) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	return c.load()
}

// New creates a new Config instance. An empty filePath means no config file;
// environment overrides and defaults still apply.
func New(filePath string) *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for key := range Defaults {
		// BindEnv only fails when called without a key
		_ = v.BindEnv(key)
	}

	return &Config{
		filePath: filePath,
		v:        v,
	}
}

// Load reads configuration from file
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Config) load() error {
	if c.filePath == "" {
		c.loaded = true
		return nil
	}

	// An explicitly named config file must exist
	info, err := os.Stat(c.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", c.filePath)
		}
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", c.filePath)
	}

	// KEY=VALUE lines with # comments, read through viper's dotenv support
	c.v.SetConfigFile(c.filePath)
	c.v.SetConfigType("env")
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	c.loaded = true
	return nil
}

// GetOrDefault retrieves a value or returns default if not found (thread-safe)
// First checks the file and environment, then the Defaults table, then the provided fallback
func (c *Config) GetOrDefault(key, defaultValue string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureLoaded(); err != nil {
		return defaultValue
	}
	if c.v.IsSet(key) {
		if value := strings.TrimSpace(c.v.GetString(key)); value != "" {
			return value
		}
	}
	if tableDefault, exists := Defaults[key]; exists {
		return tableDefault
	}
	return defaultValue
}

// GetBool retrieves a boolean value, falling back to defaultValue when the
// key is unset or not a valid boolean
func (c *Config) GetBool(key string, defaultValue bool) bool {
	raw := c.GetOrDefault(key, "")
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
