package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// TextClientInterface is the narrow contract the itinerary pipeline needs
// from a generative text provider: one prompt in, free-form text out.
type TextClientInterface interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// GeminiTextClient generates itineraries with Google's Gemini models.
type GeminiTextClient struct {
	client *genai.Client
	model  string
}

func NewGeminiTextClient(apiKey, model string) (TextClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{client: client, model: model}, nil
}

func (c *GeminiTextClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(8192)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated by Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	return out.String(), nil
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}

// OpenAITextClient is the alternate provider behind the same interface.
type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) (TextClientInterface, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is not set")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextClient{client: openai.NewClient(apiKey), model: model}, nil
}

func (c *OpenAITextClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content generated by OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

// NewTextClient picks a provider implementation based on config.
func NewTextClient(provider, apiKey, model string) (TextClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "gemini":
		return NewGeminiTextClient(apiKey, model)
	case "openai":
		return NewOpenAITextClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
