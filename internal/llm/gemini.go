package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient implements Client against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client. An empty model selects
// gemini-1.5-flash.
func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends the prompt pair and returns the model reply.
func (c *GeminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(systemPrompt+"\n\n"+userPrompt, genai.RoleUser),
	}
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("Gemini request failed: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("Gemini API returned an empty response")
	}
	return text, nil
}
