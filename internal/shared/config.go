package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	API      APIConfig      `toml:"api"`
	Login    LoginConfig    `toml:"login"`
	Database DatabaseConfig `toml:"database"`
}

// APIConfig contains settings for the remote catalog API.
type APIConfig struct {
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	PageSize       int     `toml:"page_size"`
	RateLimit      float64 `toml:"rate_limit"` // requests per second, 0 disables
}

// LoginConfig contains optional stored login credentials.
//
// Values from the HARMONY_USERNAME / HARMONY_PASSWORD environment variables
// (or a .env file) take precedence over the TOML file.
type LoginConfig struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// DatabaseConfig contains settings for the local session database.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv overlays login credentials from the environment. A .env file in
// the working directory is loaded first if present; a missing file is not an
// error.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("HARMONY_USERNAME"); v != "" {
		c.Login.Username = v
	}
	if v := os.Getenv("HARMONY_PASSWORD"); v != "" {
		c.Login.Password = v
	}
}
