package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// generateRequest is the request shape for Ollama's /api/generate endpoint.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the minimal response shape for /api/generate.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Ollama generates text against a locally hosted inference server using its
// native generate endpoint. No credentials; the server is assumed to be
// reachable on the local network.
type Ollama struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllama creates an Ollama provider.
func NewOllama(baseURL, model string) (*Ollama, error) {
	if baseURL == "" {
		return nil, errors.New("base URL required: set OLLAMA_BASE_URL")
	}
	if model == "" {
		return nil, errors.New("model is required")
	}

	return &Ollama{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		// No client timeout: the per-call deadline comes from ctx.
		httpClient: &http.Client{},
	}, nil
}

// Name reports the provider variant.
func (o *Ollama) Name() string { return "ollama" }

// Generate posts the prompt to /api/generate and returns the non-streaming
// response text.
func (o *Ollama) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:   o.model,
		Prompt:  prompt,
		Stream:  false,
		Options: generateOptions{Temperature: temperature},
	})
	if err != nil {
		return "", newError(o.Name(), KindMalformed, fmt.Errorf("encode request: %w", err))
	}

	url := o.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", newError(o.Name(), KindNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", newError(o.Name(), KindNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newError(o.Name(), KindNetwork, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", newError(o.Name(), classifyStatus(resp.StatusCode),
			fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, url, strings.TrimSpace(string(body))))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", newError(o.Name(), KindMalformed, fmt.Errorf("decode response: %w", err))
	}

	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", newError(o.Name(), KindMalformed, errors.New("empty response text"))
	}

	return text, nil
}
