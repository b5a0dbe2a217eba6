package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"github.com/nightrelay/dark-ai/backend/internal/config"
)

var (
	// ErrNoModelAvailable indicates that no candidate model passed the
	// startup probe. The assistant runs in fallback-only mode.
	ErrNoModelAvailable = errors.New("no gemini model available")

	// ErrEmptyResponse indicates the model returned no text.
	ErrEmptyResponse = errors.New("gemini returned empty response")
)

// candidateModels lists the free-tier model identifiers to try at startup,
// in preference order. The first one that answers the probe wins.
var candidateModels = []string{
	"gemini-2.0-flash-001",
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-flash-latest",
	"gemini-2.0-flash-lite",
	"gemma-3-4b-it",
	"gemma-3-12b-it",
}

// probePrompt is the trivial request used to confirm a model is responsive.
const probePrompt = "Hello, respond with just 'OK'"

// GeminiClient wraps one initialized Gemini model variant.
type GeminiClient struct {
	client *genai.Client
	model  string
	cfg    config.AIConfig
}

// NewGeminiClient builds a client bound to the first candidate model that
// answers the startup probe. The model search runs exactly once; a failed
// mid-life model is never re-selected, callers just fall back per request.
func NewGeminiClient(ctx context.Context, cfg config.AIConfig) (*GeminiClient, error) {
	if !cfg.Enabled() {
		return nil, errors.New("GOOGLE_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := selectModel(ctx, client)
	if model == "" {
		return nil, ErrNoModelAvailable
	}

	return &GeminiClient{client: client, model: model, cfg: cfg}, nil
}

// selectModel probes candidates in order and returns the first responsive one,
// or "" when every candidate fails.
func selectModel(ctx context.Context, client *genai.Client) string {
	for _, model := range candidateModels {
		log.Printf("[ai] trying to initialize model: %s", model)

		resp, err := client.Models.GenerateContent(ctx, model, genai.Text(probePrompt), nil)
		if err != nil {
			log.Printf("[ai] model %s failed: %v", model, err)
			continue
		}
		if !strings.Contains(resp.Text(), "OK") {
			log.Printf("[ai] model %s probe returned unexpected content", model)
			continue
		}

		log.Printf("[ai] successfully initialized gemini model: %s", model)
		return model
	}

	log.Printf("[ai] all gemini models failed to initialize")
	return ""
}

// Model returns the selected model identifier.
func (g *GeminiClient) Model() string {
	return g.model
}

// Generate issues a single generation call for the prompt. It reports an
// error when the call fails or the model returns no text; no retries.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.model == "" {
		return "", ErrNoModelAvailable
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(g.cfg.Temperature)),
		TopP:            genai.Ptr(float32(g.cfg.TopP)),
		TopK:            genai.Ptr(float32(g.cfg.TopK)),
		MaxOutputTokens: int32(g.cfg.MaxOutputTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
