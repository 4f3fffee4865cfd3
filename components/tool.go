package components

import (
	"github.com/google/generative-ai-go/genai"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// ToolCall is a single tool invocation requested by a reasoning engine.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

func ToolCallsFromOpenAI(src []openai.ToolCall) []ToolCall {
	list := make([]ToolCall, 0, len(src))
	for _, v := range src {
		list = append(list, ToolCall{
			ID:        v.ID,
			Name:      v.Function.Name,
			Arguments: v.Function.Arguments,
		})
	}
	return list
}

// ToolCallback carries a tool result (or typed failure) back to the engine.
type ToolCallback struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Content string `json:"content,omitempty"`
	IsError bool   `json:"is_error,omitempty"`
}

func ToolCallbacksToOpenAI(src []ToolCallback) []openai.ChatCompletionMessage {
	list := make([]openai.ChatCompletionMessage, 0, len(src))
	for _, v := range src {
		list = append(list, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Name:       v.Name,
			Content:    v.Content,
			ToolCallID: v.ID,
		})
	}
	return list
}

func ToolCallbacksToAnthropic(src []ToolCallback, dist *anthropic.Message) {
	list := make([]anthropic.MessageContent, 0, len(src))
	for _, v := range src {
		list = append(list, anthropic.NewToolResultMessageContent(v.ID, v.Content, v.IsError))
	}
	dist.Role = anthropic.RoleUser
	dist.Content = list
}

func ToolCallbacksToGemini(src []ToolCallback, dist *genai.Content) {
	parts := make([]genai.Part, 0, len(src))
	for _, v := range src {
		parts = append(parts, genai.FunctionResponse{
			Name: v.Name,
			Response: map[string]any{
				"content":  v.Content,
				"is_error": v.IsError,
			},
		})
	}
	dist.Role = "user"
	dist.Parts = parts
}
