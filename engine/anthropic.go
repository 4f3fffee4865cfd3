package engine

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/tripforge/tripforge/components"
	"github.com/tripforge/tripforge/schema"
)

const anthropicMaxTokens = 4096

// Anthropic is a reasoning engine backed by the Anthropic messages API.
type Anthropic struct {
	clt         *anthropic.Client
	model       string
	temperature float32
}

func NewAnthropic(apiKey, model string, temperature float32) *Anthropic {
	return &Anthropic{
		clt:         anthropic.NewClient(apiKey),
		model:       model,
		temperature: temperature,
	}
}

func (e *Anthropic) Provider() Provider {
	return ProviderAnthropic
}

func (e *Anthropic) Model() string {
	return e.model
}

func (e *Anthropic) NewSession(history []components.Message, specs []ToolSpec) Session {
	var system string
	messages := make([]anthropic.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role() == components.SystemRole {
			system = schema.Stringify(msg.Content())
			continue
		}
		v := new(anthropic.Message)
		msg.ToAnthropic(v)
		messages = append(messages, *v)
	}
	toolDefs := make([]anthropic.ToolDefinition, 0, len(specs))
	for _, spec := range specs {
		toolDefs = append(toolDefs, anthropic.ToolDefinition{
			Name:        spec.Name,
			Description: spec.Description,
			InputSchema: spec.Parameters,
		})
	}
	return &anthropicSession{
		engine:   e,
		system:   system,
		messages: messages,
		tools:    toolDefs,
	}
}

type anthropicSession struct {
	engine   *Anthropic
	system   string
	messages []anthropic.Message
	tools    []anthropic.ToolDefinition
}

func (s *anthropicSession) Send(ctx context.Context, callbacks []components.ToolCallback, resp *components.LLMResponse) (*Turn, error) {
	if len(callbacks) > 0 {
		msg := new(anthropic.Message)
		components.ToolCallbacksToAnthropic(callbacks, msg)
		s.messages = append(s.messages, *msg)
	}
	req := anthropic.MessagesRequest{
		Model:       anthropic.Model(s.engine.model),
		System:      s.system,
		Messages:    s.messages,
		MaxTokens:   anthropicMaxTokens,
		Temperature: &s.engine.temperature,
		Tools:       s.tools,
	}
	res, err := s.engine.clt.CreateMessages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}
	if resp != nil {
		resp.FromAnthropic(&res)
	}
	s.messages = append(s.messages, anthropic.Message{
		Role:    anthropic.RoleAssistant,
		Content: res.Content,
	})
	turn := new(Turn)
	for _, c := range res.Content {
		switch c.Type {
		case anthropic.MessagesContentTypeToolUse:
			if use := c.MessageContentToolUse; use != nil {
				turn.ToolCalls = append(turn.ToolCalls, components.ToolCall{
					ID:        use.ID,
					Name:      use.Name,
					Arguments: string(use.Input),
				})
			}
		case anthropic.MessagesContentTypeText:
			turn.FinalAnswer += c.GetText()
		}
	}
	if len(turn.ToolCalls) == 0 {
		turn.Done = true
	}
	return turn, nil
}
