package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"

	"github.com/planora-ai/planora-api/internal/types"
)

// AIClient wraps the Gemini client behind the interface the planners use.
type AIClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

type ChatSession struct {
	chat *genai.Chat
}

func NewAIClient(ctx context.Context, model string, temperature float32) (*AIClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &AIClient{
		client:      client,
		model:       model,
		temperature: temperature,
	}, nil
}

// GenerateContent runs a single completion and returns the raw model text.
// Any transport or API failure is reported as ErrModelUnavailable so the
// caller can switch to its fallback path.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](ai.temperature),
	}
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %s", types.ErrModelUnavailable, err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", types.ErrModelUnavailable)
	}
	return text, nil
}

// GenerateWithSystem runs a completion with a system instruction, used by
// the chat assistant.
func (ai *AIClient) GenerateWithSystem(ctx context.Context, system, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](ai.temperature),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %s", types.ErrModelUnavailable, err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", types.ErrModelUnavailable)
	}
	return text, nil
}

func (ai *AIClient) StartChatSession(ctx context.Context, config *genai.GenerateContentConfig) (*ChatSession, error) {
	chat, err := ai.client.Chats.Create(ctx, ai.model, config, nil)
	if err != nil {
		return nil, err
	}
	return &ChatSession{chat: chat}, nil
}

func (cs *ChatSession) SendMessage(ctx context.Context, message string) (string, error) {
	result, err := cs.chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", err
	}
	return result.Text(), nil
}
