package engine

import (
	"context"

	"github.com/tripforge/tripforge/components"
)

// Provider tags the reasoning-engine source that produced a plan.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	// ProviderDemo marks deterministic synthesis with no engine at all.
	ProviderDemo Provider = "demo"
)

// ToolSpec describes one callable operation exposed to an engine.
// Parameters is a JSON-schema object; each engine converts it to its
// provider's native declaration format.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// Turn is one engine reply: either tool calls to execute, or a final answer.
type Turn struct {
	ToolCalls   []components.ToolCall
	FinalAnswer string
	Done        bool
}

// Session is one bounded reasoning conversation. The first Send carries the
// goal; later Sends carry the previous turn's tool results.
type Session interface {
	Send(ctx context.Context, callbacks []components.ToolCallback, resp *components.LLMResponse) (*Turn, error)
}

// Engine is an abstract reasoning capability: given a goal and a tool
// catalog it produces tool invocations followed by a final answer.
type Engine interface {
	Provider() Provider
	Model() string
	NewSession(history []components.Message, specs []ToolSpec) Session
}
