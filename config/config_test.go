package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DataPath != "./data" {
		t.Errorf("data path = %s", cfg.DataPath)
	}
	if cfg.MaxRounds != 15 {
		t.Errorf("max rounds = %d", cfg.MaxRounds)
	}
	if cfg.ProbeTimeout != 2*time.Second {
		t.Errorf("probe timeout = %s", cfg.ProbeTimeout)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "data_path: /srv/datasets\nmax_rounds: 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DataPath != "/srv/datasets" {
		t.Errorf("data path = %s", cfg.DataPath)
	}
	if cfg.MaxRounds != 5 {
		t.Errorf("max rounds = %d", cfg.MaxRounds)
	}
	if cfg.OllamaBaseURL != "http://localhost:11434" {
		t.Errorf("unset keys should keep defaults, got %s", cfg.OllamaBaseURL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TRIPFORGE_DATA_PATH", "/tmp/datasets")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("openai key = %s", cfg.OpenAIAPIKey)
	}
	if cfg.DataPath != "/tmp/datasets" {
		t.Errorf("data path = %s", cfg.DataPath)
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("empty env value should not set the key")
	}
}
