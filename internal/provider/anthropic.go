package provider

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// maxTokens bounds every Anthropic completion.
const maxTokens = 4096

// Anthropic generates text through the Messages API.
type Anthropic struct {
	model anthropic.Model
	opts  []option.RequestOption
}

// NewAnthropic creates an Anthropic provider.
func NewAnthropic(apiKey, model string) (*Anthropic, error) {
	if apiKey == "" {
		return nil, errors.New("API key required: set ANTHROPIC_API_KEY")
	}
	if model == "" {
		return nil, errors.New("model is required")
	}

	return &Anthropic{
		model: anthropic.Model(model),
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}, nil
}

// Name reports the provider variant.
func (a *Anthropic) Name() string { return "anthropic" }

// Generate sends the prompt as a single user message and returns the first
// text block of the response.
func (a *Anthropic) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	client := anthropic.NewClient(a.opts...)

	params := anthropic.MessageNewParams{
		Model:       a.model,
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", newError(a.Name(), classifyStatus(apiErr.StatusCode), err)
		}
		return "", newError(a.Name(), KindNetwork, err)
	}

	if len(resp.Content) == 0 {
		return "", newError(a.Name(), KindMalformed, errors.New("empty response content"))
	}

	textBlock, ok := resp.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", newError(a.Name(), KindMalformed, errors.New("unexpected response block type"))
	}

	text := strings.TrimSpace(textBlock.Text)
	if text == "" {
		return "", newError(a.Name(), KindMalformed, errors.New("empty completion text"))
	}

	return text, nil
}
