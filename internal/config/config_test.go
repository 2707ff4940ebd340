package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadReturnsDefaults(t *testing.T) {
	os.Unsetenv("COINWATCH_API_KEY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.API.BaseURL != "https://api.coinpaprika.com/v1" {
		t.Errorf("API.BaseURL: got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSec != 30 {
		t.Errorf("API.TimeoutSec: got %d, want 30", cfg.API.TimeoutSec)
	}
	if cfg.API.Key != "" {
		t.Errorf("API.Key: got %q, want empty", cfg.API.Key)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
	if len(cfg.News.Feeds) != 0 {
		t.Errorf("News.Feeds: got %d entries, want 0 (use built-in feeds)", len(cfg.News.Feeds))
	}
}

func TestAPITimeout(t *testing.T) {
	cfg := APIConfig{TimeoutSec: 15}
	if got := cfg.Timeout(); got != 15*time.Second {
		t.Errorf("Timeout() = %v, want 15s", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
api:
  base_url: "http://localhost:9999/v1"
  timeout_sec: 5
news:
  feeds:
    - name: "Test Feed"
      url: "http://localhost:9999/rss"
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("API.BaseURL: got %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSec != 5 {
		t.Errorf("API.TimeoutSec: got %d, want 5", cfg.API.TimeoutSec)
	}
	if len(cfg.News.Feeds) != 1 || cfg.News.Feeds[0].Name != "Test Feed" {
		t.Errorf("News.Feeds: got %+v", cfg.News.Feeds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want debug", cfg.Logging.Level)
	}
	// Unset values keep their defaults.
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want text", cfg.Logging.Format)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestAPIKeyEnvOverride(t *testing.T) {
	t.Setenv("COINWATCH_API_KEY", "env-key-1234567")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Key != "env-key-1234567" {
		t.Errorf("API.Key: got %q, want env override", cfg.API.Key)
	}
}

func TestCheckAPIKeys(t *testing.T) {
	os.Unsetenv("COINWATCH_API_KEY")

	cfg := &Config{}
	keys := CheckAPIKeys(cfg)
	if len(keys) != 1 {
		t.Fatalf("got %d keys, want 1", len(keys))
	}
	if keys[0].IsSet || keys[0].Source != KeySourceNone {
		t.Errorf("unset key status = %+v", keys[0])
	}

	cfg.API.Key = "configured-key-value"
	keys = CheckAPIKeys(cfg)
	if !keys[0].IsSet || keys[0].Source != KeySourceConfig {
		t.Errorf("config key status = %+v", keys[0])
	}
	if keys[0].Masked != "con...lue" {
		t.Errorf("Masked = %q", keys[0].Masked)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"short", "***"},
		{"12345678", "***"},
		{"abcdefghijk", "abc...ijk"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.in); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
