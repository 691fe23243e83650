package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI generates text through the Chat Completions API. A base URL
// override points it at any OpenAI-compatible gateway.
type OpenAI struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAI creates an OpenAI provider.
func NewOpenAI(apiKey, model, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("API key required: set OPENAI_API_KEY")
	}
	if model == "" {
		return nil, errors.New("model is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAI{model: model, opts: opts}, nil
}

// Name reports the provider variant.
func (o *OpenAI) Name() string { return "openai" }

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (o *OpenAI) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", newError(o.Name(), classifyStatus(apiErr.StatusCode), err)
		}
		return "", newError(o.Name(), KindNetwork, err)
	}

	if len(resp.Choices) == 0 {
		return "", newError(o.Name(), KindMalformed, errors.New("empty choices in response"))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", newError(o.Name(), KindMalformed, errors.New("empty completion text"))
	}

	return text, nil
}
