package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripforge/tripforge/config"
)

func testConfig(ollamaURL string) config.Config {
	cfg := config.Default()
	cfg.OllamaBaseURL = ollamaURL
	cfg.ProbeTimeout = time.Second
	return cfg
}

func ollamaServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
}

func TestDetectPrefersOllama(t *testing.T) {
	srv := ollamaServer(t, `{"models":[{"name":"llama3.2"},{"name":"mistral"}]}`)
	defer srv.Close()
	cfg := testConfig(srv.URL)
	cfg.OpenAIAPIKey = "sk-test"

	eng, provider := Detect(context.Background(), cfg)
	if provider != ProviderOllama {
		t.Fatalf("provider = %s, want %s", provider, ProviderOllama)
	}
	if eng == nil {
		t.Fatal("expected an engine")
	}
	if eng.Model() != "llama3.2" {
		t.Errorf("model = %s, want the first installed model", eng.Model())
	}
}

func TestDetectSkipsOllamaWithoutModels(t *testing.T) {
	srv := ollamaServer(t, `{"models":[]}`)
	defer srv.Close()
	cfg := testConfig(srv.URL)
	cfg.OpenAIAPIKey = "sk-test"

	eng, provider := Detect(context.Background(), cfg)
	if provider != ProviderOpenAI {
		t.Fatalf("provider = %s, want %s", provider, ProviderOpenAI)
	}
	if eng == nil || eng.Provider() != ProviderOpenAI {
		t.Fatal("expected the OpenAI engine")
	}
}

func TestDetectFallsThroughToAnthropic(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.AnthropicAPIKey = "sk-ant-test"

	eng, provider := Detect(context.Background(), cfg)
	if provider != ProviderAnthropic {
		t.Fatalf("provider = %s, want %s", provider, ProviderAnthropic)
	}
	if eng == nil {
		t.Fatal("expected an engine")
	}
}

func TestDetectDemoWhenNothingAvailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")

	eng, provider := Detect(context.Background(), cfg)
	if provider != ProviderDemo {
		t.Fatalf("provider = %s, want %s", provider, ProviderDemo)
	}
	if eng != nil {
		t.Fatal("demo mode must not carry an engine")
	}
}

func TestDetectNon200Probe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	cfg := testConfig(srv.URL)

	_, provider := Detect(context.Background(), cfg)
	if provider != ProviderDemo {
		t.Fatalf("provider = %s, want %s", provider, ProviderDemo)
	}
}
