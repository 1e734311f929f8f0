package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.API.BaseURL != "https://sandbox.academiadevelopers.com" {
			t.Errorf("expected sandbox base URL, got %s", config.API.BaseURL)
		}

		if config.API.PageSize != 10 {
			t.Errorf("expected page size 10, got %d", config.API.PageSize)
		}

		if config.Database.Path != "harmonyctl.db" {
			t.Errorf("expected database path harmonyctl.db, got %s", config.Database.Path)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://harmony.example.com"
timeout_seconds = 15
page_size = 25
rate_limit = 2.5

[login]
username = "file_user"
password = "file_pass"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://harmony.example.com" {
			t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
		}

		if config.API.PageSize != 25 {
			t.Errorf("expected page size 25, got %d", config.API.PageSize)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Login.Username != "file_user" {
			t.Errorf("expected username file_user, got %s", config.Login.Username)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig("/does/not/exist.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("environment overrides file credentials", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[login]
username = "file_user"
password = "file_pass"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		t.Setenv("HARMONY_USERNAME", "env_user")
		t.Setenv("HARMONY_PASSWORD", "env_pass")

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Login.Username != "env_user" {
			t.Errorf("expected env username to win, got %s", config.Login.Username)
		}
		if config.Login.Password != "env_pass" {
			t.Errorf("expected env password to win, got %s", config.Login.Password)
		}
	})
}
