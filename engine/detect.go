package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tripforge/tripforge/config"
)

// tagsResponse mirrors the Ollama /api/tags payload.
type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Detect probes for an available reasoning engine in strict priority order:
// local Ollama service, then cloud credentials (Gemini, OpenAI, Anthropic).
// First success wins; each step's transient errors are treated as
// "unavailable", never propagated. With nothing reachable it returns
// (nil, ProviderDemo) so the caller always ends up with a usable planner.
func Detect(ctx context.Context, cfg config.Config) (Engine, Provider) {
	if eng := detectOllama(ctx, cfg); eng != nil {
		return eng, ProviderOllama
	}
	if key := cfg.GeminiAPIKey; key != "" {
		if eng, err := NewGemini(ctx, key, cfg.GeminiModel, cfg.Temperature); err == nil {
			return eng, ProviderGemini
		} else {
			slog.Debug("gemini unavailable", "error", err)
		}
	}
	if key := cfg.OpenAIAPIKey; key != "" {
		return NewOpenAI(key, cfg.OpenAIModel, cfg.Temperature), ProviderOpenAI
	}
	if key := cfg.AnthropicAPIKey; key != "" {
		return NewAnthropic(key, cfg.AnthropicModel, cfg.Temperature), ProviderAnthropic
	}
	return nil, ProviderDemo
}

func detectOllama(ctx context.Context, cfg config.Config) Engine {
	clt := &http.Client{Timeout: cfg.ProbeTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api/tags", cfg.OllamaBaseURL), nil)
	if err != nil {
		return nil
	}
	resp, err := clt.Do(req)
	if err != nil {
		slog.Debug("ollama unavailable", "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil
	}
	if len(tags.Models) == 0 {
		slog.Warn("ollama is running but has no models installed, run: ollama pull llama3.2")
		return nil
	}
	return NewOllama(cfg.OllamaBaseURL, tags.Models[0].Name, cfg.Temperature)
}
