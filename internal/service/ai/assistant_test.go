package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nightrelay/dark-ai/backend/internal/model/chat"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

func TestRespondUsesGenerator(t *testing.T) {
	gen := &stubGenerator{text: "generated reply"}
	assistant := NewAssistant(gen)

	got := assistant.Respond(context.Background(), "hello", nil, UserContext{})
	if got != "generated reply" {
		t.Fatalf("expected generator output, got %q", got)
	}
	if !strings.Contains(gen.prompt, "You are Dark AI") {
		t.Fatalf("expected persona instruction in prompt, got %q", gen.prompt)
	}
	if !strings.HasSuffix(gen.prompt, "User: hello\nDark AI:") {
		t.Fatalf("expected completion cue at end of prompt, got %q", gen.prompt)
	}
}

func TestRespondFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	assistant := NewAssistant(gen)

	got := assistant.Respond(context.Background(), "who are you", nil, UserContext{})
	if !strings.Contains(got, "I'm Dark AI") {
		t.Fatalf("expected fallback self identification, got %q", got)
	}
}

func TestRespondWithoutGenerator(t *testing.T) {
	assistant := NewAssistant(nil)

	if assistant.Available() {
		t.Fatal("expected assistant to report unavailable")
	}

	got := assistant.Respond(context.Background(), "tell me something", nil, UserContext{})
	if got == "" {
		t.Fatal("expected non-empty fallback response")
	}
}

func TestBuildPromptIncludesUserName(t *testing.T) {
	prompt := buildPrompt("hi", nil, UserContext{Name: "alice"})
	if !strings.Contains(prompt, "The user's name is alice.") {
		t.Fatalf("expected personalization clause, got %q", prompt)
	}
}

func TestBuildPromptTrimsHistory(t *testing.T) {
	history := make([]chat.Message, 0, 8)
	for i := 0; i < 8; i++ {
		role := chat.RoleUser
		if i%2 == 1 {
			role = chat.RoleAssistant
		}
		history = append(history, chat.Message{Role: role, Content: "turn-" + string(rune('a'+i))})
	}

	prompt := buildPrompt("latest", history, UserContext{})

	if strings.Contains(prompt, "turn-a") || strings.Contains(prompt, "turn-b") {
		t.Fatalf("expected oldest turns to be trimmed, got %q", prompt)
	}
	if !strings.Contains(prompt, "User: turn-c\n") {
		t.Fatalf("expected sixth-from-last turn present, got %q", prompt)
	}
	if !strings.Contains(prompt, "Dark AI: turn-h\n") {
		t.Fatalf("expected most recent assistant turn present, got %q", prompt)
	}
}
