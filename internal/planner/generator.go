package planner

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const systemPrompt = `You are a certified fitness and nutrition coach for a gym.
Produce practical, safe plans for regular gym members. Answer in plain text,
structured day by day, without markdown tables.`

// Generator turns a prompt into a generated plan. The OpenAI-compatible
// client implements it in production; tests inject a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type openAIGenerator struct {
	client openai.Client
	model  string
}

// NewOpenAIGenerator builds a Generator against any OpenAI-compatible
// completion API (base URL is provider-specific).
func NewOpenAIGenerator(apiKey, baseURL, model string) Generator {
	return &openAIGenerator{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
		),
		model: model,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	chat, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("plan generation failed: %w", err)
	}

	if len(chat.Choices) == 0 {
		return "", errors.New("plan generation returned no choices")
	}

	return chat.Choices[0].Message.Content, nil
}
