package ai

import (
	"fmt"
	"strings"
	"time"
)

// fallbackRule pairs a keyword group with its canned responder. Rules are
// evaluated in order; the first match wins.
type fallbackRule struct {
	keywords []string
	respond  func(message, displayName string) string
}

// fallbackRules holds the keyword groups in their fixed precedence order.
// Matching is case-insensitive substring containment, so the ordering is
// observable behavior and must not be rearranged.
var fallbackRules = []fallbackRule{
	{
		keywords: []string{"python", "code", "programming", "function", "class", "algorithm"},
		respond: func(_, _ string) string {
			return "I can help you with programming concepts and code! Are you working on a specific project, debugging code, or learning a new programming concept?"
		},
	},
	{
		keywords: []string{"explain", "what is", "how does", "tell me about"},
		respond: func(message, _ string) string {
			return fmt.Sprintf("I'd be happy to explain this topic! What specific aspect of '%s' would you like me to focus on?", message)
		},
	},
	{
		keywords: []string{"weather", "temperature", "forecast"},
		respond: func(_, _ string) string {
			return "While I don't have real-time weather data access, I can help you understand weather concepts or guide you in implementing weather APIs."
		},
	},
	{
		keywords: []string{"time", "date", "current time"},
		respond: func(_, _ string) string {
			currentTime := time.Now().Format("2006-01-02 15:04:05")
			return fmt.Sprintf("The current date and time is: %s. What can I help you with today?", currentTime)
		},
	},
	{
		keywords: []string{"who are you", "what are you", "your name"},
		respond: func(_, _ string) string {
			return "I'm Dark AI, your intelligent assistant. I'm here to help you with various tasks, answer questions, and provide insightful information."
		},
	},
	{
		keywords: []string{"help", "assist", "support"},
		respond: func(_, _ string) string {
			return strings.Join([]string{
				"I can assist you with:",
				"",
				"• Programming and development",
				"• Problem-solving and analysis",
				"• Creative writing and content",
				"• Learning and explanations",
				"• Technical guidance",
				"• Research and information",
				"",
				"What specific area would you like help with?",
			}, "\n")
		},
	},
	{
		keywords: []string{"thank", "thanks", "appreciate"},
		respond: func(_, _ string) string {
			return "You're welcome! I'm glad I could help. Is there anything else you'd like to discuss?"
		},
	},
	{
		keywords: []string{"hello", "hi", "hey", "greetings"},
		respond: func(_, displayName string) string {
			if displayName != "" {
				return fmt.Sprintf("Hello %s! I'm Dark AI, ready to assist you. What would you like to explore today?", displayName)
			}
			return "Hello! I'm Dark AI, your intelligent assistant. I'm here to help you with various tasks and answer your questions."
		},
	},
	{
		keywords: []string{"joke", "funny"},
		respond: func(_, _ string) string {
			return "Why did the AI cross the road? To optimize the other side! 😄 What else can I help you with?"
		},
	},
}

// FallbackResponse maps a user message to a canned reply when Gemini is
// unavailable. Deterministic and side-effect free: an ongoing conversation
// (more than two prior entries) short-circuits the keyword rules entirely.
func FallbackResponse(message string, historyLen int, displayName string) string {
	messageLower := strings.ToLower(strings.TrimSpace(message))

	if historyLen > 2 {
		return fmt.Sprintf("I understand you're continuing our conversation about '%s'. Could you provide more specific details about what you'd like to explore?", message)
	}

	for _, rule := range fallbackRules {
		if containsAny(messageLower, rule.keywords) {
			return rule.respond(message, displayName)
		}
	}

	return fmt.Sprintf("I understand you're asking about '%s'. That's an interesting topic! I'd be happy to help you explore this further.", message)
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
