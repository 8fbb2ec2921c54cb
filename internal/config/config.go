package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the global smoovboard configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	AI     AIConfig     `toml:"ai"`
}

// ServerConfig holds session-server settings.
type ServerConfig struct {
	Port int `toml:"port"`
}

// AIConfig holds AI collaborator settings. The API key itself comes from the
// GEMINI_API_KEY environment variable, never from the config file.
type AIConfig struct {
	Model string `toml:"model"`
}

// DefaultPort is the session server's default listen port.
const DefaultPort = 7321

// DefaultModel is the Gemini model used for task breakdown.
const DefaultModel = "gemini-2.5-flash"

// DefaultDir returns the default config directory (~/.smoovboard).
// If SMOOVBOARD_DIR is set, uses that path instead.
func DefaultDir() (string, error) {
	if d := os.Getenv("SMOOVBOARD_DIR"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".smoovboard"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// SeedPath returns the optional directory roster override file.
func SeedPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "directory.yaml"), nil
}

// Load reads config from the default path, applying defaults.
// If the file doesn't exist, returns a config with defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path, applying defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes config to the given path, creating directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// APIKey returns the Gemini credential from the environment. Empty when
// unset; the suggestion pipeline surfaces that as a configuration error.
func (c *Config) APIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.AI.Model == "" {
		c.AI.Model = DefaultModel
	}
}
