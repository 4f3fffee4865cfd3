package engine

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/tripforge/tripforge/components"
)

// OpenAI is a reasoning engine backed by an OpenAI-compatible chat API.
// It also serves the local Ollama provider through its compatibility
// endpoint.
type OpenAI struct {
	clt         *openai.Client
	provider    Provider
	model       string
	temperature float32
}

// NewOpenAI returns an engine bound to the OpenAI API.
func NewOpenAI(apiKey, model string, temperature float32) *OpenAI {
	return &OpenAI{
		clt:         openai.NewClient(apiKey),
		provider:    ProviderOpenAI,
		model:       model,
		temperature: temperature,
	}
}

// NewOllama returns an engine bound to a local Ollama service via its
// OpenAI-compatible endpoint.
func NewOllama(baseURL, model string, temperature float32) *OpenAI {
	cfg := openai.DefaultConfig("ollama")
	cfg.BaseURL = baseURL + "/v1"
	return &OpenAI{
		clt:         openai.NewClientWithConfig(cfg),
		provider:    ProviderOllama,
		model:       model,
		temperature: temperature,
	}
}

func (e *OpenAI) Provider() Provider {
	return e.provider
}

func (e *OpenAI) Model() string {
	return e.model
}

func (e *OpenAI) NewSession(history []components.Message, specs []ToolSpec) Session {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, msg := range history {
		v := new(openai.ChatCompletionMessage)
		msg.ToOpenAI(v)
		messages = append(messages, *v)
	}
	toolDefs := make([]openai.Tool, 0, len(specs))
	for _, spec := range specs {
		toolDefs = append(toolDefs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        spec.Name,
				Description: spec.Description,
				Parameters:  spec.Parameters,
			},
		})
	}
	return &openaiSession{
		engine:   e,
		messages: messages,
		tools:    toolDefs,
	}
}

type openaiSession struct {
	engine   *OpenAI
	messages []openai.ChatCompletionMessage
	tools    []openai.Tool
}

func (s *openaiSession) Send(ctx context.Context, callbacks []components.ToolCallback, resp *components.LLMResponse) (*Turn, error) {
	if len(callbacks) > 0 {
		s.messages = append(s.messages, components.ToolCallbacksToOpenAI(callbacks)...)
	}
	chatReq := openai.ChatCompletionRequest{
		Model:       s.engine.model,
		Temperature: s.engine.temperature,
		Messages:    s.messages,
		Tools:       s.tools,
	}
	res, err := s.engine.clt.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.engine.provider, err)
	}
	if resp != nil {
		resp.FromOpenAI(&res)
	}
	if len(res.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}
	msg := res.Choices[0].Message
	s.messages = append(s.messages, msg)
	if len(msg.ToolCalls) > 0 {
		return &Turn{ToolCalls: components.ToolCallsFromOpenAI(msg.ToolCalls)}, nil
	}
	return &Turn{Done: true, FinalAnswer: msg.Content}, nil
}
