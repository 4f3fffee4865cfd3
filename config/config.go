package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every knob the planner and its collaborators need. It is
// passed explicitly into constructors; nothing reads it ambiently.
type Config struct {
	// DataPath is the base directory of the static JSON datasets.
	DataPath string `yaml:"data_path"`
	// WeatherBaseURL is the forecast API endpoint.
	WeatherBaseURL string `yaml:"weather_base_url"`
	// OllamaBaseURL is the local inference service endpoint.
	OllamaBaseURL string `yaml:"ollama_base_url"`
	// GeminiModel is the default cloud model for the Gemini provider.
	GeminiModel string `yaml:"gemini_model"`
	// OpenAIModel is the default cloud model for the OpenAI provider.
	OpenAIModel string `yaml:"openai_model"`
	// AnthropicModel is the default cloud model for the Anthropic provider.
	AnthropicModel string `yaml:"anthropic_model"`
	// Temperature for response generation, typically ranging from 0 to 1.
	Temperature float32 `yaml:"temperature"`
	// MaxRounds bounds the reasoning engine's tool-invocation rounds.
	MaxRounds int `yaml:"max_rounds"`
	// ProbeTimeout bounds the local inference service probe.
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// Cloud credentials, environment-sourced, never serialized.
	GeminiAPIKey    string `yaml:"-"`
	OpenAIAPIKey    string `yaml:"-"`
	AnthropicAPIKey string `yaml:"-"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		DataPath:       "./data",
		WeatherBaseURL: "https://api.open-meteo.com/v1/forecast",
		OllamaBaseURL:  "http://localhost:11434",
		GeminiModel:    "gemini-1.5-flash",
		OpenAIModel:    "gpt-4o-mini",
		AnthropicModel: "claude-3-5-haiku-20241022",
		Temperature:    0.7,
		MaxRounds:      15,
		ProbeTimeout:   2 * time.Second,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	bs, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(bs, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment values: cloud credentials and deployment
// overrides. Absent variables leave the config untouched.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AnthropicAPIKey = v
	}
	if v := os.Getenv("TRIPFORGE_DATA_PATH"); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv("TRIPFORGE_OLLAMA_URL"); v != "" {
		c.OllamaBaseURL = v
	}
	if v := os.Getenv("TRIPFORGE_WEATHER_URL"); v != "" {
		c.WeatherBaseURL = v
	}
}
