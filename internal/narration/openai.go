package narration

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type implOpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI creates a Generator backed by the OpenAI chat completions API.
func NewOpenAI(apiKey, model string) Generator {
	return &implOpenAI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (o *implOpenAI) Name() string {
	return "openai/" + o.model
}

func (o *implOpenAI) Generate(ctx context.Context, topic string) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(topic)),
		},
		Model:       openai.ChatModel(o.model),
		Temperature: openai.Float(0.75),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
