package ai

import (
	"fmt"
	"strings"

	"github.com/nightrelay/dark-ai/backend/internal/model/chat"
)

// AssistantName is how the assistant refers to itself in prompts and replies.
const AssistantName = "Dark AI"

// promptHistoryLimit bounds how many transcript entries the prompt carries.
const promptHistoryLimit = 6

// systemPrompt is the fixed persona instruction prepended to every prompt.
const systemPrompt = `You are Dark AI, a helpful, intelligent, and slightly mysterious AI assistant.
You have a dark-themed interface but are actually very helpful and friendly.
You can assist with coding, problem-solving, creative writing, analysis, and general knowledge.

Personality:
- Be concise but thorough in your responses
- Maintain a slightly mysterious but helpful tone
- Provide accurate and helpful information
- Be engaging but professional
- If you don't know something, admit it honestly
- Keep responses focused and relevant

Important: Respond naturally and conversationally.`

// buildPrompt renders the full conversation prompt: persona instruction,
// optional user personalization, a trimmed transcript, and the current
// message as a completion cue for the assistant turn.
func buildPrompt(message string, history []chat.Message, userCtx UserContext) string {
	var builder strings.Builder
	builder.WriteString(systemPrompt)

	if userCtx.Name != "" {
		builder.WriteString(fmt.Sprintf("\n\nThe user's name is %s.", userCtx.Name))
	}

	builder.WriteString("\n\nConversation History:\n")

	startIdx := 0
	if len(history) > promptHistoryLimit {
		startIdx = len(history) - promptHistoryLimit
	}
	for _, msg := range history[startIdx:] {
		role := "User"
		if msg.Role != chat.RoleUser {
			role = AssistantName
		}
		builder.WriteString(fmt.Sprintf("%s: %s\n", role, msg.Content))
	}

	builder.WriteString(fmt.Sprintf("\nUser: %s\n%s:", message, AssistantName))
	return builder.String()
}
