package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/xid"
	"google.golang.org/api/option"

	"github.com/tripforge/tripforge/components"
	"github.com/tripforge/tripforge/schema"
)

// Gemini is a reasoning engine backed by the Gemini API.
type Gemini struct {
	clt         *genai.Client
	model       string
	temperature float32
}

func NewGemini(ctx context.Context, apiKey, model string, temperature float32) (*Gemini, error) {
	clt, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Gemini{
		clt:         clt,
		model:       model,
		temperature: temperature,
	}, nil
}

func (e *Gemini) Provider() Provider {
	return ProviderGemini
}

func (e *Gemini) Model() string {
	return e.model
}

// Close releases the underlying API client.
func (e *Gemini) Close() error {
	return e.clt.Close()
}

func (e *Gemini) NewSession(history []components.Message, specs []ToolSpec) Session {
	gm := e.clt.GenerativeModel(e.model)
	gm.SetTemperature(e.temperature)
	decls := make([]*genai.FunctionDeclaration, 0, len(specs))
	for _, spec := range specs {
		decls = append(decls, &genai.FunctionDeclaration{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  toGeminiSchema(spec.Parameters),
		})
	}
	gm.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	var goal string
	for _, msg := range history {
		switch msg.Role() {
		case components.SystemRole:
			gm.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(schema.Stringify(msg.Content()))},
			}
		case components.UserRole:
			goal = schema.Stringify(msg.Content())
		}
	}
	return &geminiSession{
		chat: gm.StartChat(),
		goal: goal,
	}
}

type geminiSession struct {
	chat    *genai.ChatSession
	goal    string
	started bool
}

func (s *geminiSession) Send(ctx context.Context, callbacks []components.ToolCallback, resp *components.LLMResponse) (*Turn, error) {
	var parts []genai.Part
	if len(callbacks) > 0 {
		content := new(genai.Content)
		components.ToolCallbacksToGemini(callbacks, content)
		parts = content.Parts
	} else if !s.started {
		parts = []genai.Part{genai.Text(s.goal)}
	} else {
		return nil, errors.New("gemini: nothing to send")
	}
	s.started = true
	res, err := s.chat.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if resp != nil {
		resp.FromGemini(res)
	}
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil, errors.New("gemini: empty candidate response")
	}
	turn := new(Turn)
	for _, part := range res.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.FunctionCall:
			args, _ := json.Marshal(v.Args)
			turn.ToolCalls = append(turn.ToolCalls, components.ToolCall{
				ID:        xid.New().String(),
				Name:      v.Name,
				Arguments: string(args),
			})
		case genai.Text:
			turn.FinalAnswer += string(v)
		}
	}
	if len(turn.ToolCalls) == 0 {
		turn.Done = true
	}
	return turn, nil
}

// toGeminiSchema converts a JSON-schema object to the Gemini declaration
// format. Only the subset the tool catalog emits is handled.
func toGeminiSchema(params map[string]any) *genai.Schema {
	if params == nil {
		return nil
	}
	out := &genai.Schema{Type: geminiType(params["type"])}
	if desc, ok := params["description"].(string); ok {
		out.Description = desc
	}
	if props, ok := params["properties"].(map[string]any); ok {
		out.Properties = make(map[string]*genai.Schema, len(props))
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				out.Properties[name] = toGeminiSchema(sub)
			}
		}
	}
	if required, ok := params["required"].([]string); ok {
		out.Required = required
	}
	if enum, ok := params["enum"].([]string); ok {
		out.Enum = enum
	}
	if items, ok := params["items"].(map[string]any); ok {
		out.Items = toGeminiSchema(items)
	}
	return out
}

func geminiType(v any) genai.Type {
	name, _ := v.(string)
	switch name {
	case "object":
		return genai.TypeObject
	case "array":
		return genai.TypeArray
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
