package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/nestegg/internal/common"
	"google.golang.org/genai"
)

// geminiClient talks to the Gemini API through the genai SDK.
type geminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

func newGeminiClient(ctx context.Context, cfg Config) (*geminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key is required", common.ErrMissingConfig)
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1024
	}

	return &geminiClient{
		client:      client,
		model:       model,
		temperature: float32(cfg.Temperature),
		maxTokens:   int32(maxTokens), //nolint:gosec // configured token budgets are small
	}, nil
}

// Complete implements Client.
func (c *geminiClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(c.temperature),
		MaxOutputTokens:  c.maxTokens,
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
