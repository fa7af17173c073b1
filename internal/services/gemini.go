package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:      client,
		modelName:   modelName,
		temperature: 0.3,
	}, nil
}

// GenerateText implements GeminiService. A single attempt is made; every
// service-side failure, including an empty reply, comes back as a
// TransportError so handlers can report it without retrying.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &g.temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", &TransportError{Cause: err}
	}

	if resp == nil {
		return "", &TransportError{Cause: fmt.Errorf("no response generated")}
	}

	text := resp.Text()
	if text == "" {
		return "", &TransportError{Cause: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
