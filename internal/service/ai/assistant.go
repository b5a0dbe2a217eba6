package ai

import (
	"context"
	"log"

	"github.com/nightrelay/dark-ai/backend/internal/model/chat"
)

// Generator produces text for a fully constructed prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// UserContext carries per-request user attributes into generation.
type UserContext struct {
	Name    string
	Premium bool
}

// Assistant composes the live Gemini path with the canned fallback. A nil
// generator means the process runs in fallback-only mode for its lifetime.
type Assistant struct {
	generator Generator
}

// NewAssistant 创建对话助手。generator 为 nil 时进入纯降级模式。
func NewAssistant(generator Generator) *Assistant {
	return &Assistant{generator: generator}
}

// Available reports whether a live model backs this assistant.
func (a *Assistant) Available() bool {
	return a.generator != nil
}

// Respond produces the assistant reply for a user message. It never fails:
// any unavailability or generation error terminates in a fallback string.
func (a *Assistant) Respond(ctx context.Context, message string, history []chat.Message, userCtx UserContext) string {
	if a.generator != nil {
		prompt := buildPrompt(message, history, userCtx)
		text, err := a.generator.Generate(ctx, prompt)
		if err == nil {
			return text
		}
		log.Printf("[ai] generation failed, using fallback: %v", err)
	}

	return FallbackResponse(message, len(history), userCtx.Name)
}
