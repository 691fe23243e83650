package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messageBody builds a minimal Messages API response carrying the given text
// block content.
func messageBody(text string) string {
	return fmt.Sprintf(`{
		"id": "msg_1",
		"type": "message",
		"role": "assistant",
		"model": "claude-sonnet-4-5-20250929",
		"content": [{"type": "text", "text": %q}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 1, "output_tokens": 1}
	}`, text)
}

// testAnthropic builds a provider pointed at the given server.
func testAnthropic(url string) *Anthropic {
	return &Anthropic{
		model: "claude-sonnet-4-5-20250929",
		opts: []option.RequestOption{
			option.WithAPIKey("sk-ant-test"),
			option.WithBaseURL(url),
		},
	}
}

func newMessageServer(t *testing.T, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, messageBody(text))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnthropicGenerate(t *testing.T) {
	srv := newMessageServer(t, "Generated article text.\n")

	gen := testAnthropic(srv.URL)

	text, err := gen.Generate(context.Background(), "write something", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "Generated article text.", text)
}

func TestAnthropicGenerateEmptyCompletion(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "  \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newMessageServer(t, tt.text)

			_, err := testAnthropic(srv.URL).Generate(context.Background(), "write something", 0.5)
			require.Error(t, err)

			var provErr *Error
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, KindMalformed, provErr.Kind)
			assert.Equal(t, "anthropic", provErr.Provider)
		})
	}
}

func TestAnthropicGenerateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 1, "output_tokens": 1}
		}`)
	}))
	t.Cleanup(srv.Close)

	_, err := testAnthropic(srv.URL).Generate(context.Background(), "write something", 0.5)
	require.Error(t, err)

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, KindMalformed, provErr.Kind)
}
